package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid single provider",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
		},
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "a"},
				{Name: "qwen", Enabled: true, Priority: 1, Model: "b"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority on disabled provider is ignored",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "a"},
				{Name: "qwen", Enabled: false, Priority: 1, Model: "b"},
			}},
		},
		{
			name: "none enabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: false, Priority: 1, Model: "a"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("TEST_QWEN_KEY", "from-env")
	writeConfig(t, `
memory:
  access_key: mem-key
discussion:
  max_iterations: 3
  run_timeout: 2m
llm:
  fallback_enabled: false
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: g-key
      model: gemini-2.5-flash
    - name: qwen
      enabled: true
      priority: 2
      api_key: ${TEST_QWEN_KEY}
      model: qwen-plus
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Memory.AccessKey != "mem-key" {
		t.Errorf("AccessKey = %q", cfg.Memory.AccessKey)
	}
	if cfg.Discussion.MaxIterations != 3 {
		t.Errorf("MaxIterations = %d", cfg.Discussion.MaxIterations)
	}
	if cfg.Discussion.RunTimeout != 2*time.Minute {
		t.Errorf("RunTimeout = %v", cfg.Discussion.RunTimeout)
	}
	if cfg.Discussion.ResultCacheSize != 128 {
		t.Errorf("ResultCacheSize default = %d", cfg.Discussion.ResultCacheSize)
	}
	if cfg.LLM.FallbackEnabled {
		t.Error("FallbackEnabled should be false")
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("Providers = %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[1].APIKey != "from-env" {
		t.Errorf("expanded api key = %q", cfg.LLM.Providers[1].APIKey)
	}
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "bare-key")
	t.Setenv("MEMORY_ACCESS_KEY", "env-mem")
	writeConfig(t, "environment:\n  name: test\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "bare-key" {
		t.Errorf("unexpected providers %+v", cfg.LLM.Providers)
	}
	if cfg.Memory.AccessKey != "env-mem" {
		t.Errorf("AccessKey = %q", cfg.Memory.AccessKey)
	}
	if cfg.Discussion.MaxIterations != 2 {
		t.Errorf("default MaxIterations = %d", cfg.Discussion.MaxIterations)
	}
}

func TestLoad_RejectsZeroIterations(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "bare-key")
	writeConfig(t, "discussion:\n  max_iterations: 0\n")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for max_iterations 0")
	}
}
