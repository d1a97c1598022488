package usecase

import (
	"context"
	"fmt"
	"strconv"

	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/memory"
)

// seed loads the knowledge base and records the user's text.
func (uc *implUseCase) seed(ctx context.Context, s discussion.State, store memory.Store) (discussion.Delta, error) {
	n, err := store.LoadKnowledgeBase(ctx)
	if err != nil {
		return discussion.Delta{}, fmt.Errorf("load knowledge base: %w", err)
	}
	if _, err := store.Add(ctx, memory.UserInput{Body: s.OriginalText}, nil); err != nil {
		return discussion.Delta{}, fmt.Errorf("record user input: %w", err)
	}

	uc.l.Debug(ctx, "discussion seeded", "session_id", store.SessionID(), "principles", n)
	return discussion.Delta{}, nil
}

// plan asks for a short discussion plan built from the panel, the writing
// principles and an excerpt of the text.
func (uc *implUseCase) plan(ctx context.Context, s discussion.State, store memory.Store) (discussion.Delta, error) {
	uc.l.Info(ctx, "planning discussion", "iteration", s.Iteration)

	knowledge, err := store.Search(ctx, hintKnowledge, memory.Filter{Kind: memory.KindKnowledge})
	if err != nil {
		return discussion.Delta{}, fmt.Errorf("search knowledge: %w", err)
	}

	text, err := uc.gen.Generate(ctx, buildPlanPrompt(s.Personas, knowledge, s.OriginalText))
	if err != nil {
		uc.l.Errorf(ctx, "internal.discussion.usecase.plan: generate: %v", err)
		return discussion.Delta{}, &discussion.GenerationError{Stage: discussion.PhasePlanning, Err: err}
	}

	if _, err := store.Add(ctx, memory.Plan{Body: text}, iterationExtra(s)); err != nil {
		return discussion.Delta{}, fmt.Errorf("record plan: %w", err)
	}
	return discussion.Delta{Plan: &text}, nil
}

// turns lets every persona speak once, in selection order. Each turn is
// recorded before the next persona reads the session, so later speakers see
// earlier ones.
func (uc *implUseCase) turns(ctx context.Context, s discussion.State, store memory.Store) (discussion.Delta, error) {
	uc.l.Info(ctx, "starting round table", "iteration", s.Iteration, "personas", len(s.Personas))

	out := make([]discussion.Turn, 0, len(s.Personas))
	for _, p := range s.Personas {
		history, err := store.Search(ctx, hintContext, memory.Filter{})
		if err != nil {
			return discussion.Delta{}, fmt.Errorf("search context: %w", err)
		}

		text, err := uc.gen.Generate(ctx, buildTurnPrompt(p, history, s.OriginalText))
		if err != nil {
			uc.l.Errorf(ctx, "internal.discussion.usecase.turns: generate for %s: %v", p.ID, err)
			return discussion.Delta{}, &discussion.GenerationError{Stage: discussion.PhaseDiscussing, PersonaID: p.ID, Err: err}
		}

		rec := memory.AgentTurn{AgentID: p.ID, AgentName: p.Name, Body: text}
		if _, err := store.Add(ctx, rec, iterationExtra(s)); err != nil {
			return discussion.Delta{}, fmt.Errorf("record turn for %s: %w", p.ID, err)
		}
		out = append(out, discussion.Turn{PersonaID: p.ID, PersonaName: p.Name, Text: text})
	}

	return discussion.Delta{NewTurns: out}, nil
}

// reflect decides whether the panel needs another round. The iteration cap
// wins over a CONTINUE verdict.
func (uc *implUseCase) reflect(ctx context.Context, s discussion.State, store memory.Store) (discussion.Delta, error) {
	reply, err := uc.gen.Generate(ctx, buildReflectPrompt(s.Discussion))
	if err != nil {
		uc.l.Errorf(ctx, "internal.discussion.usecase.reflect: generate: %v", err)
		return discussion.Delta{}, &discussion.GenerationError{Stage: discussion.PhaseReflecting, Err: err}
	}

	verdict, why := parseVerdict(reply)
	if _, err := store.Add(ctx, memory.Reflection{Verdict: verdict, Rationale: why}, iterationExtra(s)); err != nil {
		return discussion.Delta{}, fmt.Errorf("record reflection: %w", err)
	}

	uc.l.Info(ctx, "reflection", "verdict", verdict, "reason", why, "iteration", s.Iteration, "max_iterations", s.MaxIterations)

	if verdict == memory.VerdictContinue && s.Iteration < s.MaxIterations {
		return discussion.Delta{Verdict: verdict, NextIteration: true}, nil
	}
	return discussion.Delta{Verdict: verdict, Finish: true}, nil
}

func iterationExtra(s discussion.State) map[string]string {
	return map[string]string{extraIteration: strconv.Itoa(s.Iteration)}
}
