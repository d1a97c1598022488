package usecase

import (
	"fmt"
	"strings"

	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/persona"
)

func buildPlanPrompt(personas []persona.Persona, knowledge []memory.Entry, text string) string {
	names := make([]string, len(personas))
	for i, p := range personas {
		names[i] = p.Name
	}
	return fmt.Sprintf(planPromptTemplate,
		strings.Join(names, ", "),
		renderEntries(knowledge, "\n"),
		planExcerptLen,
		excerpt(text, planExcerptLen),
	)
}

func buildTurnPrompt(p persona.Persona, context []memory.Entry, text string) string {
	return fmt.Sprintf(turnPromptTemplate,
		p.Directive,
		p.Name,
		renderEntries(context, contextSeparator),
		text,
		p.Name,
	)
}

func buildReflectPrompt(turns []discussion.Turn) string {
	return fmt.Sprintf(reflectPromptTemplate, renderTranscript(turns))
}

func renderEntries(entries []memory.Entry, sep string) string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text()
	}
	return strings.Join(texts, sep)
}

func renderTranscript(turns []discussion.Turn) string {
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = t.PersonaName + ": " + t.Text
	}
	return strings.Join(lines, "\n")
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// parseVerdict reads a reflector reply. Anything that does not open with
// CONTINUE is treated as FINISH.
func parseVerdict(reply string) (memory.Verdict, string) {
	trimmed := strings.TrimSpace(reply)

	for _, v := range []memory.Verdict{memory.VerdictContinue, memory.VerdictFinish} {
		n := len(v)
		if len(trimmed) >= n && strings.EqualFold(trimmed[:n], string(v)) {
			return v, rationale(trimmed[n:])
		}
	}
	return memory.VerdictFinish, trimmed
}

func rationale(rest string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ":"))
}
