package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// IGemini is a generateContent client. Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client bound to one model.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrNoMessages
	}

	wire, err := g.post(ctx, encodeRequest(req))
	if err != nil {
		return nil, err
	}
	if wire.PromptFeedback != nil && wire.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrPromptBlocked, wire.PromptFeedback.BlockReason)
	}
	return decodeResponse(wire), nil
}

func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) post(ctx context.Context, body geminiRequest) (*geminiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.apiURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAPIKey, g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &out, nil
}

// decodeAPIError reads the google.rpc.Status envelope, keeping the raw body
// when it does not parse.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}

	var env geminiErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Message != "" {
		apiErr.Status = env.Error.Status
		apiErr.Message = env.Error.Message
	}
	return apiErr
}

func encodeRequest(req *Request) geminiRequest {
	out := geminiRequest{Contents: make([]geminiContent, 0, len(req.Messages))}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: encodeParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		out.Contents = append(out.Contents, geminiContent{Role: role, Parts: encodeParts(msg.Parts)})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 || req.ResponseMIMEType != "" {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:      req.Temperature,
			MaxOutputTokens:  req.MaxTokens,
			ResponseMIMEType: req.ResponseMIMEType,
			ResponseSchema:   req.ResponseSchema,
		}
	}
	return out
}

func encodeParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
	}
	return out
}

// decodeResponse keeps only the first candidate.
func decodeResponse(wire *geminiResponse) *Response {
	resp := &Response{Usage: &Usage{}}
	if m := wire.UsageMetadata; m != nil {
		resp.Usage = &Usage{
			InputTokens:  m.PromptTokenCount,
			OutputTokens: m.CandidatesTokenCount,
			TotalTokens:  m.TotalTokenCount,
		}
	}
	if len(wire.Candidates) == 0 {
		return resp
	}

	c := wire.Candidates[0]
	resp.FinishReason = c.FinishReason
	resp.Content = Content{Role: c.Content.Role, Parts: make([]Part, len(c.Content.Parts))}
	for i, p := range c.Content.Parts {
		resp.Content.Parts[i] = Part{Text: p.Text}
	}
	return resp
}
