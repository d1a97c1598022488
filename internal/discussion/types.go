package discussion

import (
	"time"

	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/persona"
)

// Turn is one persona's contribution within one pass of the round table.
type Turn struct {
	PersonaID   persona.ID
	PersonaName string
	Text        string
}

// State is threaded through the orchestration loop. Discussion only grows
// and Iteration only increases; FinalOutput stays nil until the loop stops.
type State struct {
	OriginalText  string
	Personas      []persona.Persona
	Plan          string
	Discussion    []Turn
	Iteration     int
	MaxIterations int
	FinalOutput   []Turn
}

// NewState returns the initial state of a run.
func NewState(text string, personas []persona.Persona, maxIterations int) State {
	return State{
		OriginalText:  text,
		Personas:      personas,
		Discussion:    []Turn{},
		Iteration:     1,
		MaxIterations: maxIterations,
	}
}

// Done reports whether the reflector has closed the discussion.
func (s State) Done() bool {
	return s.FinalOutput != nil
}

// Delta is what a stage returns; the controller folds it into State.
type Delta struct {
	Plan     *string
	NewTurns []Turn
	// Verdict is set by the reflect stage only.
	Verdict       memory.Verdict
	NextIteration bool
	Finish        bool
}

// Apply folds d into a copy of s.
func (s State) Apply(d Delta) State {
	if d.Plan != nil {
		s.Plan = *d.Plan
	}
	if len(d.NewTurns) > 0 {
		grown := make([]Turn, 0, len(s.Discussion)+len(d.NewTurns))
		grown = append(grown, s.Discussion...)
		s.Discussion = append(grown, d.NewTurns...)
	}
	if d.NextIteration {
		s.Iteration++
	}
	if d.Finish {
		s.FinalOutput = append(make([]Turn, 0, len(s.Discussion)), s.Discussion...)
	}
	return s
}

// --- UseCase Inputs ---

type RunInput struct {
	Text     string
	Personas []persona.ID
	// MaxIterations of 0 selects the configured default.
	MaxIterations int
}

// --- UseCase Outputs ---

type RunOutput struct {
	ID         string
	Turns      []Turn
	Iterations int
	Personas   []persona.ID
	CreatedAt  time.Time
}
