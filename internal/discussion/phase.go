package discussion

import (
	"context"

	"physics-writing-assistant/internal/memory"
)

// Phase is a state of the orchestration loop.
type Phase string

const (
	PhaseInit       Phase = "INIT"
	PhasePlanning   Phase = "PLANNING"
	PhaseDiscussing Phase = "DISCUSSING"
	PhaseReflecting Phase = "REFLECTING"
	PhaseDone       Phase = "DONE"
)

// Stage runs one phase against the run's store and reports the state change.
type Stage func(ctx context.Context, s State, store memory.Store) (Delta, error)

// Next returns the phase that follows p once its stage has been applied to s.
func Next(p Phase, s State) Phase {
	switch p {
	case PhaseInit:
		return PhasePlanning
	case PhasePlanning:
		return PhaseDiscussing
	case PhaseDiscussing:
		return PhaseReflecting
	case PhaseReflecting:
		if s.Done() {
			return PhaseDone
		}
		return PhasePlanning
	default:
		return PhaseDone
	}
}
