package usecase

import (
	"context"

	"physics-writing-assistant/internal/review"
	"physics-writing-assistant/pkg/llmprovider"
	"physics-writing-assistant/pkg/log"
)

// Generator is the structured-output call the reviewer needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l             log.Logger
	llm           Generator
	defaultFormat string
}

// New creates a review UseCase. An unknown defaultFormat falls back to the
// first publication format.
func New(l log.Logger, llm Generator, defaultFormat string) *implUseCase {
	if !review.IsPublicationFormat(defaultFormat) {
		defaultFormat = review.PublicationFormats[0]
	}
	return &implUseCase{
		l:             l,
		llm:           llm,
		defaultFormat: defaultFormat,
	}
}

func (uc *implUseCase) DefaultFormat() string {
	return uc.defaultFormat
}
