package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/persona"
)

// Run validates the request, then drives the loop on a store of its own.
func (uc *implUseCase) Run(ctx context.Context, input discussion.RunInput) (discussion.RunOutput, error) {
	personas, maxIterations, err := uc.validate(input)
	if err != nil {
		uc.rec.ObserveRun(statusInvalid, 0)
		return discussion.RunOutput{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.RunTimeout)
	defer cancel()

	store, err := uc.newStore(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.discussion.usecase.Run: new store: %v", err)
		uc.rec.ObserveRun(statusError, 0)
		return discussion.RunOutput{}, fmt.Errorf("create memory store: %w", err)
	}

	uc.l.Info(ctx, "discussion started", "session_id", store.SessionID(), "personas", len(personas), "max_iterations", maxIterations)

	final, err := uc.drive(ctx, discussion.NewState(input.Text, personas, maxIterations), store)
	if err != nil {
		return discussion.RunOutput{}, uc.fail(ctx, err)
	}

	ids := make([]persona.ID, len(personas))
	for i, p := range personas {
		ids[i] = p.ID
	}
	out := discussion.RunOutput{
		ID:         uuid.NewString(),
		Turns:      final.FinalOutput,
		Iterations: final.Iteration,
		Personas:   ids,
		CreatedAt:  uc.now(),
	}
	uc.results.Add(out.ID, out)
	uc.rec.ObserveRun(statusSuccess, final.Iteration)

	uc.l.Info(ctx, "discussion finished", "id", out.ID, "turns", len(out.Turns), "iterations", out.Iterations)
	return out, nil
}

// Get returns a completed run that is still cached.
func (uc *implUseCase) Get(ctx context.Context, id string) (discussion.RunOutput, error) {
	out, ok := uc.results.Get(id)
	if !ok {
		return discussion.RunOutput{}, discussion.ErrDiscussionNotFound
	}
	return out, nil
}

func (uc *implUseCase) Personas(ctx context.Context) []persona.Persona {
	return uc.registry.List()
}

// drive is the loop controller: it runs the stage for the current phase,
// folds the delta into the state and moves to the next phase until DONE.
func (uc *implUseCase) drive(ctx context.Context, state discussion.State, store memory.Store) (discussion.State, error) {
	for phase := discussion.PhaseInit; phase != discussion.PhaseDone; phase = discussion.Next(phase, state) {
		stage, ok := uc.stages[phase]
		if !ok {
			return state, fmt.Errorf("no stage for phase %s", phase)
		}

		start := time.Now()
		delta, err := stage(ctx, state, store)
		uc.rec.ObserveStage(string(phase), time.Since(start).Seconds())
		if err != nil {
			return state, err
		}
		state = state.Apply(delta)
	}
	return state, nil
}

func (uc *implUseCase) validate(input discussion.RunInput) ([]persona.Persona, int, error) {
	if len(input.Personas) == 0 {
		return nil, 0, discussion.ErrNoPersonas
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, 0, discussion.ErrEmptyText
	}

	maxIterations := input.MaxIterations
	if maxIterations == 0 {
		maxIterations = uc.cfg.MaxIterations
	}
	if maxIterations < 1 {
		return nil, 0, discussion.ErrInvalidMaxIterations
	}

	personas, err := uc.registry.Resolve(input.Personas)
	if err != nil {
		return nil, 0, err
	}
	return personas, maxIterations, nil
}

// fail classifies a run failure for metrics and the caller.
func (uc *implUseCase) fail(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		uc.rec.ObserveRun(statusTimeout, 0)
		uc.l.Errorf(ctx, "internal.discussion.usecase.Run: timed out after %s: %v", uc.cfg.RunTimeout, err)
		return fmt.Errorf("%w: %w", discussion.ErrRunTimeout, err)
	case errors.Is(err, discussion.ErrDiscussionGeneration):
		uc.rec.ObserveRun(statusGeneration, 0)
	default:
		uc.rec.ObserveRun(statusError, 0)
	}
	uc.l.Errorf(ctx, "internal.discussion.usecase.Run: %v", err)
	return err
}
