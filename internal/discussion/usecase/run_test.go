package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/persona"
)

func turnTexts(turns []discussion.Turn) []string {
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = t.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRun_ContinueUntilCap(t *testing.T) {
	gen := newScriptedGenerator("CONTINUE: the panel has not engaged yet")
	uc, factory, rec := newTestUseCase(t, gen, Config{})

	out, err := uc.Run(context.Background(), discussion.RunInput{
		Text:          "We derive the Friedmann equation from spin foams.",
		Personas:      []persona.ID{persona.Einstein, persona.Feynman},
		MaxIterations: 2,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"EINSTEIN1", "FEYNMAN1", "EINSTEIN2", "FEYNMAN2"}
	if got := turnTexts(out.Turns); !equalStrings(got, want) {
		t.Errorf("turns = %v, want %v", got, want)
	}
	if out.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", out.Iterations)
	}
	if out.ID == "" {
		t.Error("expected run id")
	}
	if out.Turns[0].PersonaName != "Albert Einstein" {
		t.Errorf("PersonaName = %q", out.Turns[0].PersonaName)
	}

	if n := gen.count("You are an orchestrator"); n != 2 {
		t.Errorf("plan calls = %d, want 2", n)
	}
	if n := gen.count("You are a reflector agent"); n != 2 {
		t.Errorf("reflect calls = %d, want 2", n)
	}
	if factory.created() != 1 {
		t.Errorf("stores created = %d, want 1", factory.created())
	}

	if len(rec.runs) != 1 || rec.runs[0] != statusSuccess {
		t.Errorf("run observations = %v", rec.runs)
	}
	if rec.stages[string(discussion.PhaseInit)] != 1 || rec.stages[string(discussion.PhaseReflecting)] != 2 {
		t.Errorf("stage observations = %v", rec.stages)
	}
}

func TestRun_FinishAfterFirstPass(t *testing.T) {
	gen := newScriptedGenerator("FINISH: a clear synthesis was reached")
	uc, _, _ := newTestUseCase(t, gen, Config{})

	out, err := uc.Run(context.Background(), discussion.RunInput{
		Text:     "text",
		Personas: []persona.ID{persona.Dirac, persona.Heisenberg, persona.Schrodinger},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"DIRAC1", "HEISENBERG1", "SCHRODINGER1"}
	if got := turnTexts(out.Turns); !equalStrings(got, want) {
		t.Errorf("turns = %v, want %v", got, want)
	}
	if out.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", out.Iterations)
	}
}

func TestRun_CapWinsOverContinue(t *testing.T) {
	gen := newScriptedGenerator("continue: lowercase still counts")
	uc, _, _ := newTestUseCase(t, gen, Config{})

	out, err := uc.Run(context.Background(), discussion.RunInput{
		Text:          "text",
		Personas:      []persona.ID{persona.Feynman},
		MaxIterations: 1,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out.Turns) != 1 || out.Iterations != 1 {
		t.Errorf("turns=%d iterations=%d, want 1/1", len(out.Turns), out.Iterations)
	}
}

func TestRun_DefaultMaxIterationsFromConfig(t *testing.T) {
	gen := newScriptedGenerator("CONTINUE: more")
	uc, _, _ := newTestUseCase(t, gen, Config{MaxIterations: 3})

	out, err := uc.Run(context.Background(), discussion.RunInput{Text: "text", Personas: []persona.ID{persona.Dirac}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.Iterations != 3 || len(out.Turns) != 3 {
		t.Errorf("iterations=%d turns=%d, want 3/3", out.Iterations, len(out.Turns))
	}
}

func TestRun_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		input   discussion.RunInput
		wantErr error
	}{
		{
			name:    "no personas",
			input:   discussion.RunInput{Text: "text"},
			wantErr: discussion.ErrNoPersonas,
		},
		{
			name:    "blank text",
			input:   discussion.RunInput{Text: "  \n", Personas: []persona.ID{persona.Dirac}},
			wantErr: discussion.ErrEmptyText,
		},
		{
			name:    "unknown persona",
			input:   discussion.RunInput{Text: "text", Personas: []persona.ID{"BOHR"}},
			wantErr: discussion.ErrUnknownPersona,
		},
		{
			name:    "duplicate persona",
			input:   discussion.RunInput{Text: "text", Personas: []persona.ID{persona.Dirac, persona.Dirac}},
			wantErr: discussion.ErrDuplicatePersona,
		},
		{
			name:    "negative max iterations",
			input:   discussion.RunInput{Text: "text", Personas: []persona.ID{persona.Dirac}, MaxIterations: -1},
			wantErr: discussion.ErrInvalidMaxIterations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newScriptedGenerator("FINISH: ok")
			uc, factory, rec := newTestUseCase(t, gen, Config{})

			out, err := uc.Run(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if out.Turns != nil {
				t.Errorf("expected no transcript, got %v", out.Turns)
			}
			// Nothing may touch memory or the model before validation passes.
			if factory.created() != 0 {
				t.Errorf("stores created = %d, want 0", factory.created())
			}
			if len(gen.prompts) != 0 {
				t.Errorf("generator called %d times", len(gen.prompts))
			}
			if len(rec.runs) != 1 || rec.runs[0] != statusInvalid {
				t.Errorf("run observations = %v", rec.runs)
			}
		})
	}
}

func TestRun_GenerationFailureYieldsNoTranscript(t *testing.T) {
	gen := newScriptedGenerator("CONTINUE: more")
	gen.failFor = persona.Feynman
	uc, _, rec := newTestUseCase(t, gen, Config{})

	out, err := uc.Run(context.Background(), discussion.RunInput{
		Text:     "text",
		Personas: []persona.ID{persona.Einstein, persona.Feynman},
	})
	if !errors.Is(err, discussion.ErrDiscussionGeneration) {
		t.Fatalf("Run() error = %v, want ErrDiscussionGeneration", err)
	}

	var genErr *discussion.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if genErr.Stage != discussion.PhaseDiscussing || genErr.PersonaID != persona.Feynman {
		t.Errorf("GenerationError = %+v", genErr)
	}
	if out.Turns != nil || out.ID != "" {
		t.Errorf("expected empty output, got %+v", out)
	}
	if uc.results.Len() != 0 {
		t.Errorf("failed run was cached")
	}
	if len(rec.runs) != 1 || rec.runs[0] != statusGeneration {
		t.Errorf("run observations = %v", rec.runs)
	}
}

func TestRun_StageFailureYieldsNoTranscript(t *testing.T) {
	tests := []struct {
		name      string
		failRole  string
		wantStage discussion.Phase
		wantTurns int
	}{
		{name: "plan", failRole: "You are an orchestrator", wantStage: discussion.PhasePlanning, wantTurns: 0},
		{name: "reflect", failRole: "You are a reflector agent", wantStage: discussion.PhaseReflecting, wantTurns: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newScriptedGenerator("FINISH: ok")
			gen.failRole = tt.failRole
			uc, _, rec := newTestUseCase(t, gen, Config{})

			out, err := uc.Run(context.Background(), discussion.RunInput{
				Text:     "text",
				Personas: []persona.ID{persona.Einstein, persona.Feynman},
			})
			if !errors.Is(err, discussion.ErrDiscussionGeneration) {
				t.Fatalf("Run() error = %v, want ErrDiscussionGeneration", err)
			}

			var genErr *discussion.GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GenerationError, got %T", err)
			}
			if genErr.Stage != tt.wantStage || genErr.PersonaID != "" {
				t.Errorf("GenerationError = %+v, want stage %s", genErr, tt.wantStage)
			}
			if out.Turns != nil || out.ID != "" {
				t.Errorf("expected empty output, got %+v", out)
			}
			if uc.results.Len() != 0 {
				t.Errorf("failed run was cached")
			}
			if len(rec.runs) != 1 || rec.runs[0] != statusGeneration {
				t.Errorf("run observations = %v", rec.runs)
			}
			if got := gen.count("**Your Persona:**"); got != tt.wantTurns {
				t.Errorf("turn prompts = %d, want %d", got, tt.wantTurns)
			}
		})
	}
}

func TestRun_Timeout(t *testing.T) {
	gen := newScriptedGenerator("FINISH: ok")
	gen.block = true
	uc, _, rec := newTestUseCase(t, gen, Config{RunTimeout: 20 * time.Millisecond})

	_, err := uc.Run(context.Background(), discussion.RunInput{Text: "text", Personas: []persona.ID{persona.Dirac}})
	if !errors.Is(err, discussion.ErrRunTimeout) {
		t.Fatalf("Run() error = %v, want ErrRunTimeout", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded in chain: %v", err)
	}
	if len(rec.runs) != 1 || rec.runs[0] != statusTimeout {
		t.Errorf("run observations = %v", rec.runs)
	}
}

func TestRun_MemoryLog(t *testing.T) {
	gen := newScriptedGenerator("CONTINUE: more")
	uc, factory, _ := newTestUseCase(t, gen, Config{})
	ctx := context.Background()

	_, err := uc.Run(ctx, discussion.RunInput{
		Text:          "text",
		Personas:      []persona.ID{persona.Einstein, persona.Feynman},
		MaxIterations: 2,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	store := factory.stores[0]
	counts := map[memory.Kind]int{
		memory.KindKnowledge:  len(memory.WritingPrinciples),
		memory.KindUserInput:  1,
		memory.KindPlan:       2,
		memory.KindAgentTurn:  4,
		memory.KindReflection: 2,
	}
	for kind, want := range counts {
		got, err := store.Search(ctx, "", memory.Filter{Kind: kind})
		if err != nil {
			t.Fatalf("Search(%s) error = %v", kind, err)
		}
		if len(got) != want {
			t.Errorf("%s entries = %d, want %d", kind, len(got), want)
		}
	}

	second, err := store.Search(ctx, "", memory.Filter{Kind: memory.KindAgentTurn, Extra: map[string]string{extraIteration: "2"}})
	if err != nil {
		t.Fatalf("Search error = %v", err)
	}
	if len(second) != 2 || second[0].Text() != "Albert Einstein: EINSTEIN2" {
		t.Errorf("second pass turns = %v", second)
	}
}

func TestTurns_LaterPersonasSeeEarlierTurns(t *testing.T) {
	gen := newScriptedGenerator("FINISH: ok")
	uc, factory, _ := newTestUseCase(t, gen, Config{})
	ctx := context.Background()

	store, err := factory.New(ctx)
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}
	personas, _ := persona.Default().Resolve([]persona.ID{persona.Einstein, persona.Feynman})
	state := discussion.NewState("manuscript body", personas, 1)

	delta, err := uc.turns(ctx, state, store)
	if err != nil {
		t.Fatalf("turns() error = %v", err)
	}
	if len(delta.NewTurns) != 2 {
		t.Fatalf("NewTurns = %d, want 2", len(delta.NewTurns))
	}

	first, second := gen.prompts[0], gen.prompts[1]
	if strings.Contains(first, "Albert Einstein: EINSTEIN1") {
		t.Error("first persona saw its own future turn")
	}
	if !strings.Contains(second, "Albert Einstein: EINSTEIN1") {
		t.Error("second persona did not see the first persona's turn")
	}
	if !strings.Contains(second, "manuscript body") {
		t.Error("turn prompt is missing the original text")
	}
}

func TestTurns_DeterministicOrder(t *testing.T) {
	personas, _ := persona.Default().Resolve([]persona.ID{persona.Heisenberg, persona.Einstein, persona.Dirac})

	var runs [][]string
	for i := 0; i < 2; i++ {
		gen := newScriptedGenerator("FINISH: ok")
		uc, factory, _ := newTestUseCase(t, gen, Config{})
		store, _ := factory.New(context.Background())

		delta, err := uc.turns(context.Background(), discussion.NewState("text", personas, 1), store)
		if err != nil {
			t.Fatalf("turns() error = %v", err)
		}
		runs = append(runs, turnTexts(delta.NewTurns))
	}

	if !equalStrings(runs[0], runs[1]) {
		t.Errorf("turn order differs: %v vs %v", runs[0], runs[1])
	}
	if !equalStrings(runs[0], []string{"HEISENBERG1", "EINSTEIN1", "DIRAC1"}) {
		t.Errorf("turn order = %v", runs[0])
	}
}

func TestGet(t *testing.T) {
	gen := newScriptedGenerator("FINISH: ok")
	uc, _, _ := newTestUseCase(t, gen, Config{})
	ctx := context.Background()

	out, err := uc.Run(ctx, discussion.RunInput{Text: "text", Personas: []persona.ID{persona.Dirac}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := uc.Get(ctx, out.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != out.ID || len(got.Turns) != 1 {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, discussion.ErrDiscussionNotFound) {
		t.Errorf("Get(missing) error = %v", err)
	}
}

func TestPersonas(t *testing.T) {
	uc, _, _ := newTestUseCase(t, newScriptedGenerator(""), Config{})
	if got := uc.Personas(context.Background()); len(got) != 5 {
		t.Errorf("Personas() = %d, want 5", len(got))
	}
}
