package llmprovider

import (
	"context"

	"physics-writing-assistant/pkg/gemini"
	"physics-writing-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages: []gemini.Content{
			{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: req.Prompt}}},
		},
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		ResponseMIMEType: req.ResponseMIMEType,
		ResponseSchema:   req.ResponseSchema,
	}
	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// ChatAdapter adapts an OpenAI-compatible endpoint (Qwen, DeepSeek, OpenAI)
// to the Provider interface.
type ChatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewChatAdapter creates an adapter reporting itself under name.
func NewChatAdapter(name string, client openaicompat.IClient) *ChatAdapter {
	return &ChatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		System:           req.SystemInstruction,
		Messages:         []openaicompat.Message{{Role: "user", Content: req.Prompt}},
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		ResponseMIMEType: req.ResponseMIMEType,
	})
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	out := &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    model,
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *ChatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatAdapter) Model() string {
	return a.client.Model()
}
