package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveRun(t *testing.T) {
	r := NewRecorder()
	before := testutil.ToFloat64(DiscussionRunsTotal.WithLabelValues("success"))

	r.ObserveRun("success", 2)

	if got := testutil.ToFloat64(DiscussionRunsTotal.WithLabelValues("success")); got != before+1 {
		t.Fatalf("discussion_runs_total{success} = %v, want %v", got, before+1)
	}
}

func TestRecorder_ObserveGeneration(t *testing.T) {
	r := NewRecorder()
	before := testutil.ToFloat64(LLMGenerationsTotal.WithLabelValues("gemini", "gemini-2.5-flash", "error"))

	r.ObserveGeneration("gemini", "gemini-2.5-flash", "error", 0.3)

	got := testutil.ToFloat64(LLMGenerationsTotal.WithLabelValues("gemini", "gemini-2.5-flash", "error"))
	if got != before+1 {
		t.Fatalf("llm_generations_total = %v, want %v", got, before+1)
	}
}

func TestSanitizeModelLabel(t *testing.T) {
	if got := sanitizeModelLabel("   "); got != "unknown" {
		t.Errorf("sanitizeModelLabel(blank) = %q", got)
	}
	if got := sanitizeModelLabel("qwen-plus\n\t"); strings.ContainsAny(got, "\n\t") {
		t.Errorf("sanitizeModelLabel kept whitespace: %q", got)
	}
	if got := sanitizeModelLabel("gpt-4o mini"); got != "gpt-4o_mini" {
		t.Errorf("sanitizeModelLabel = %q", got)
	}
	long := strings.Repeat("a", maxModelLabelLen+10)
	if got := sanitizeModelLabel(long); len(got) != maxModelLabelLen {
		t.Errorf("len = %d, want %d", len(got), maxModelLabelLen)
	}
}
