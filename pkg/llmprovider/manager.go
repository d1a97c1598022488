package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"physics-writing-assistant/pkg/log"
)

// Manager orchestrates provider selection and fallback. Each provider gets a
// single attempt per request.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	Recorder        Recorder
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	tried := 0

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", tried, ctx.Err())
		default:
		}

		tried++
		resp, err := m.attempt(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// Generate implements Generator on top of GenerateContent.
func (m *Manager) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, &Request{Prompt: prompt})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (m *Manager) attempt(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	if err == nil && (resp == nil || strings.TrimSpace(resp.Text) == "") {
		err = ErrEmptyResponse
	}

	if m.config.Recorder != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.config.Recorder.ObserveGeneration(provider.Name(), provider.Model(), status, time.Since(start).Seconds())
	}

	if err != nil {
		return nil, err
	}
	if resp.Usage == nil {
		resp.Usage = &Usage{}
	}
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
