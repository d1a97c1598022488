package memory

import "context"

// Store is a session-scoped append-only log of typed entries.
//
// A store serves one discussion run at a time. Search only ever sees the
// current session; Clear starts a new one.
type Store interface {
	// Add records rec under the current session and returns the stored entry.
	Add(ctx context.Context, rec Record, extra map[string]string) (Entry, error)
	// Search returns current-session entries matching filter in ascending Seq
	// order. queryHint is advisory and does not affect matching.
	Search(ctx context.Context, queryHint string, filter Filter) ([]Entry, error)
	// LoadKnowledgeBase appends one Knowledge entry per principle and reports
	// how many were added. Each call appends again.
	LoadKnowledgeBase(ctx context.Context) (int, error)
	// Clear drops every entry, starts a new session and reseeds the knowledge base.
	Clear(ctx context.Context) error
	SessionID() string
}

// Factory creates a fresh store for one discussion run.
type Factory func(ctx context.Context) (Store, error)
