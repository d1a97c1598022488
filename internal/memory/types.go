package memory

import (
	"fmt"
	"time"

	"physics-writing-assistant/internal/persona"
)

// Kind is the closed set of entry categories.
type Kind string

const (
	KindUserInput  Kind = "user_input"
	KindPlan       Kind = "plan"
	KindScratchpad Kind = "agent_scratchpad"
	KindAgentTurn  Kind = "agent_turn"
	KindReflection Kind = "reflection"
	KindKnowledge  Kind = "knowledge_base"
)

// Verdict is the reflector's decision on whether the discussion needs another round.
type Verdict string

const (
	VerdictContinue Verdict = "CONTINUE"
	VerdictFinish   Verdict = "FINISH"
)

// Record is the typed payload of an Entry. Each kind has its own variant and
// the set is sealed to this package.
type Record interface {
	Kind() Kind
	Text() string
	isRecord()
}

// Attributed is implemented by the variants that carry agent provenance.
type Attributed interface {
	Agent() persona.ID
}

// UserInput is the manuscript text a run was started with.
type UserInput struct {
	Body string
}

func (r UserInput) Kind() Kind   { return KindUserInput }
func (r UserInput) Text() string { return fmt.Sprintf("User Input: %q", r.Body) }
func (r UserInput) isRecord()    {}

type Plan struct {
	Body string
}

func (r Plan) Kind() Kind   { return KindPlan }
func (r Plan) Text() string { return "Discussion Plan: " + r.Body }
func (r Plan) isRecord()    {}

// Scratchpad holds a persona's private working notes.
type Scratchpad struct {
	AgentID persona.ID
	Body    string
}

func (r Scratchpad) Kind() Kind        { return KindScratchpad }
func (r Scratchpad) Text() string      { return fmt.Sprintf("Scratchpad (%s): %s", r.AgentID, r.Body) }
func (r Scratchpad) Agent() persona.ID { return r.AgentID }
func (r Scratchpad) isRecord()         {}

// AgentTurn is one persona's contribution to the round table.
type AgentTurn struct {
	AgentID   persona.ID
	AgentName string
	Body      string
}

func (r AgentTurn) Kind() Kind { return KindAgentTurn }
func (r AgentTurn) Text() string {
	name := r.AgentName
	if name == "" {
		name = string(r.AgentID)
	}
	return name + ": " + r.Body
}
func (r AgentTurn) Agent() persona.ID { return r.AgentID }
func (r AgentTurn) isRecord()         {}

type Reflection struct {
	Verdict   Verdict
	Rationale string
}

func (r Reflection) Kind() Kind { return KindReflection }
func (r Reflection) Text() string {
	return fmt.Sprintf("Reflection: %s: %s", r.Verdict, r.Rationale)
}
func (r Reflection) isRecord() {}

// Knowledge is one seeded writing principle.
type Knowledge struct {
	Principle   string
	Explanation string
}

func (r Knowledge) Kind() Kind { return KindKnowledge }
func (r Knowledge) Text() string {
	return fmt.Sprintf("Principle: %s. Explanation: %s", r.Principle, r.Explanation)
}
func (r Knowledge) isRecord() {}

// Entry is an immutable fact recorded in a session's log. Seq is the store's
// logical clock and defines chronological order; CreatedAt is informational.
type Entry struct {
	ID        string
	SessionID string
	Seq       uint64
	CreatedAt time.Time
	Record    Record
	Extra     map[string]string
}

func (e Entry) Kind() Kind   { return e.Record.Kind() }
func (e Entry) Text() string { return e.Record.Text() }

// AgentID reports the persona that produced the entry, if its kind carries one.
func (e Entry) AgentID() (persona.ID, bool) {
	if a, ok := e.Record.(Attributed); ok {
		return a.Agent(), true
	}
	return "", false
}

// Filter narrows a Search. Zero-valued fields are not applied.
type Filter struct {
	SessionID string
	Kind      Kind
	AgentID   persona.ID
	Extra     map[string]string
}

// Match reports whether e satisfies every set field of f. An entry whose kind
// has no agent never matches an AgentID filter, and a missing extra key never
// matches.
func (f Filter) Match(e Entry) bool {
	if f.SessionID != "" && f.SessionID != e.SessionID {
		return false
	}
	if f.Kind != "" && f.Kind != e.Kind() {
		return false
	}
	if f.AgentID != "" {
		id, ok := e.AgentID()
		if !ok || id != f.AgentID {
			return false
		}
	}
	for k, want := range f.Extra {
		got, ok := e.Extra[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
