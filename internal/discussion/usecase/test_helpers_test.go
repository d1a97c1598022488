package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/memory/inmem"
	"physics-writing-assistant/internal/persona"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedGenerator answers each prompt by its role in the loop. Turn replies
// are "<ID><n>" where n counts that persona's turns.
type scriptedGenerator struct {
	mu       sync.Mutex
	verdict  string
	failFor  persona.ID
	failRole string
	block    bool
	prompts  []string
	perAgent map[persona.ID]int
}

func newScriptedGenerator(verdict string) *scriptedGenerator {
	return &scriptedGenerator{verdict: verdict, perAgent: make(map[persona.ID]int)}
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)

	if g.block {
		g.mu.Unlock()
		<-ctx.Done()
		g.mu.Lock()
		return "", ctx.Err()
	}

	if g.failRole != "" && strings.Contains(prompt, g.failRole) {
		return "", fmt.Errorf("provider unavailable for %q", g.failRole)
	}

	switch {
	case strings.Contains(prompt, "You are an orchestrator"):
		return "1. Examine the claim.\n2. Debate.\n3. Conclude.", nil
	case strings.Contains(prompt, "You are a reflector agent"):
		return g.verdict, nil
	}

	for _, p := range persona.Default().List() {
		if strings.HasPrefix(strings.TrimSpace(prompt), "**Your Persona:**\n"+p.Directive) {
			if p.ID == g.failFor {
				return "", fmt.Errorf("provider unavailable for %s", p.ID)
			}
			g.perAgent[p.ID]++
			return fmt.Sprintf("%s%d", p.ID, g.perAgent[p.ID]), nil
		}
	}
	return "", fmt.Errorf("unexpected prompt: %.40s", prompt)
}

func (g *scriptedGenerator) count(marker string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, p := range g.prompts {
		if strings.Contains(p, marker) {
			n++
		}
	}
	return n
}

// recordingFactory hands out inmem stores and remembers them.
type recordingFactory struct {
	mu     sync.Mutex
	stores []memory.Store
}

func (f *recordingFactory) New(ctx context.Context) (memory.Store, error) {
	s, err := inmem.New(inmem.Config{AccessKey: "test-key"})
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.stores = append(f.stores, s)
	f.mu.Unlock()
	return s, nil
}

func (f *recordingFactory) created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stores)
}

type mockRecorder struct {
	mu     sync.Mutex
	runs   []string
	stages map[string]int
}

func (r *mockRecorder) ObserveRun(status string, iterations int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, status)
}

func (r *mockRecorder) ObserveStage(stage string, seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stages == nil {
		r.stages = make(map[string]int)
	}
	r.stages[stage]++
}

func newTestUseCase(t *testing.T, gen *scriptedGenerator, cfg Config) (*implUseCase, *recordingFactory, *mockRecorder) {
	t.Helper()
	factory := &recordingFactory{}
	rec := &mockRecorder{}
	return New(&mockLogger{}, gen, factory.New, persona.Default(), rec, cfg), factory, rec
}
