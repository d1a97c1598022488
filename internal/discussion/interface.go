package discussion

import (
	"context"

	"physics-writing-assistant/internal/persona"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Run executes one round-table discussion to completion.
	Run(ctx context.Context, input RunInput) (RunOutput, error)
	// Get returns a recently completed run.
	Get(ctx context.Context, id string) (RunOutput, error)
	Personas(ctx context.Context) []persona.Persona
}

// Recorder receives loop metrics.
type Recorder interface {
	ObserveRun(status string, iterations int)
	ObserveStage(stage string, seconds float64)
}
