package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"physics-writing-assistant/internal/review"
	"physics-writing-assistant/pkg/llmprovider"
)

// Analyze sends one schema-constrained review request and validates the reply.
func (uc *implUseCase) Analyze(ctx context.Context, input review.AnalyzeInput) (review.AnalyzeOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return review.AnalyzeOutput{}, review.ErrEmptyText
	}
	section, ok := review.ParseSection(string(input.Section))
	if !ok {
		return review.AnalyzeOutput{}, fmt.Errorf("%w: %q", review.ErrUnknownSection, input.Section)
	}
	format := input.Format
	if format == "" {
		format = uc.defaultFormat
	}
	if !review.IsPublicationFormat(format) {
		return review.AnalyzeOutput{}, fmt.Errorf("%w: %q", review.ErrUnknownFormat, format)
	}

	uc.l.Info(ctx, "analyzing section", "section", section, "format", format)

	resp, err := uc.llm.GenerateContent(ctx, buildRequest(section, format, input.Text))
	if err != nil {
		uc.l.Errorf(ctx, "internal.review.usecase.Analyze: generate: %v", err)
		return review.AnalyzeOutput{}, fmt.Errorf("%w: %w", review.ErrReviewGeneration, err)
	}

	result, err := parseResult(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "internal.review.usecase.Analyze: %v", err)
		return review.AnalyzeOutput{}, err
	}

	return review.AnalyzeOutput{Section: section, Format: format, Result: result}, nil
}

func buildRequest(section review.Section, format, text string) *llmprovider.Request {
	return &llmprovider.Request{
		Prompt:           fmt.Sprintf(reviewPromptTemplate, format, section, text),
		Temperature:      reviewTemperature,
		ResponseMIMEType: llmprovider.MIMETypeJSON,
		ResponseSchema:   resultSchema,
	}
}

// parseResult decodes a model reply, tolerating a fenced code block.
func parseResult(raw string) (review.Result, error) {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var result review.Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return review.Result{}, fmt.Errorf("%w: decode: %v", review.ErrInvalidModelOutput, err)
	}

	if result.QualityScore < 1 || result.QualityScore > 5 {
		return review.Result{}, fmt.Errorf("%w: quality score %v out of range", review.ErrInvalidModelOutput, result.QualityScore)
	}
	for i, v := range result.Violations {
		if !v.Severity.Valid() {
			return review.Result{}, fmt.Errorf("%w: violation %d has severity %q", review.ErrInvalidModelOutput, i, v.Severity)
		}
	}
	if strings.TrimSpace(result.GuidelinesTitle) == "" {
		return review.Result{}, fmt.Errorf("%w: missing guidelines title", review.ErrInvalidModelOutput)
	}

	if result.Violations == nil {
		result.Violations = []review.Violation{}
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.ClarificationQuestions == nil {
		result.ClarificationQuestions = []string{}
	}
	if result.Recommendations == nil {
		result.Recommendations = []string{}
	}
	return result, nil
}
