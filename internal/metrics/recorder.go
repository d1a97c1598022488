package metrics

import (
	"strings"
	"unicode"
)

const maxModelLabelLen = 64

// Recorder feeds the package collectors. It satisfies both
// llmprovider.Recorder and discussion.Recorder.
type Recorder struct{}

// NewRecorder returns a Recorder backed by the default registry.
func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) ObserveRun(status string, iterations int) {
	DiscussionRunsTotal.WithLabelValues(status).Inc()
	if iterations > 0 {
		DiscussionIterations.Observe(float64(iterations))
	}
}

func (Recorder) ObserveStage(stage string, seconds float64) {
	DiscussionStageDuration.WithLabelValues(strings.ToLower(stage)).Observe(seconds)
}

func (Recorder) ObserveGeneration(provider, model, status string, seconds float64) {
	model = sanitizeModelLabel(model)
	LLMGenerationsTotal.WithLabelValues(provider, model, status).Inc()
	LLMGenerationLatency.WithLabelValues(provider, model).Observe(seconds)
}

// sanitizeModelLabel keeps model labels printable and bounded.
func sanitizeModelLabel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return "unknown"
	}
	model = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_.:/", r) {
			return r
		}
		return '_'
	}, model)
	if len(model) > maxModelLabelLen {
		model = model[:maxModelLabelLen]
	}
	return model
}
