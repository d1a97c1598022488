package llmprovider_test

import (
	"errors"
	"testing"

	"physics-writing-assistant/config"
	"physics-writing-assistant/pkg/llmprovider"
)

func TestInitializeProviders_OrderAndFiltering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 3, APIKey: "k3", Model: "deepseek-chat"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k1", Model: "gemini-2.5-flash", Timeout: "45s"},
			{Name: "qwen", Enabled: false, Priority: 2, APIKey: "k2", Model: "qwen-plus"},
			{Name: "openai", Enabled: true, Priority: 2, APIKey: "k4", Model: "gpt-4o-mini"},
		},
		FallbackEnabled: true,
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	want := []string{"gemini", "openai", "deepseek"}
	if len(providers) != len(want) {
		t.Fatalf("Expected %d providers, got %d", len(want), len(providers))
	}
	for i, name := range want {
		if providers[i].Name() != name {
			t.Errorf("provider %d = %s, want %s", i, providers[i].Name(), name)
		}
	}
	if providers[0].Model() != "gemini-2.5-flash" {
		t.Errorf("unexpected gemini model %s", providers[0].Model())
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr error
	}{
		{name: "nil config", cfg: nil},
		{name: "no providers", cfg: &config.LLMConfig{}, wantErr: llmprovider.ErrNoProvidersConfigured},
		{
			name: "all disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: false, Priority: 1, APIKey: "k", Model: "qwen-plus"},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "missing api key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "m", Timeout: "soon"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
