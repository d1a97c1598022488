package review

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs a single structured review of one section.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	DefaultFormat() string
}
