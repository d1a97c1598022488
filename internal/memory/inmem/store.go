package inmem

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"physics-writing-assistant/internal/memory"
)

func (s *implStore) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

func (s *implStore) Add(ctx context.Context, rec memory.Record, extra map[string]string) (memory.Entry, error) {
	if err := ctx.Err(); err != nil {
		return memory.Entry{}, err
	}
	if rec == nil {
		return memory.Entry{}, memory.ErrNilRecord
	}

	s.mu.Lock()
	e := s.addLocked(rec, extra)
	s.mu.Unlock()

	agent, _ := e.AgentID()
	s.l.Debug(ctx, "memory add", "kind", e.Kind(), "agent_id", agent, "seq", e.Seq)
	return cloneEntry(e), nil
}

func (s *implStore) Search(ctx context.Context, queryHint string, filter memory.Filter) ([]memory.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// A held id from before the last Clear reaches nothing.
	if filter.SessionID != "" && filter.SessionID != s.sessionID {
		return []memory.Entry{}, nil
	}

	// entries is append-only between clears, so it is already in Seq order.
	out := make([]memory.Entry, 0)
	for _, e := range s.entries {
		if e.SessionID != s.sessionID || !filter.Match(e) {
			continue
		}
		out = append(out, cloneEntry(e))
	}

	s.l.Debug(ctx, "memory search", "query", queryHint, "kind", filter.Kind, "results", len(out))
	return out, nil
}

func (s *implStore) LoadKnowledgeBase(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	n := s.seedLocked()
	s.mu.Unlock()

	s.l.Debug(ctx, "memory knowledge base loaded", "count", n)
	return n, nil
}

func (s *implStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	old := s.sessionID
	s.entries = nil
	s.sessionID = newSessionID()
	n := s.seedLocked()
	current := s.sessionID
	s.mu.Unlock()

	s.l.Info(ctx, "memory cleared", "old_session_id", old, "session_id", current, "reseeded", n)
	return nil
}

func (s *implStore) addLocked(rec memory.Record, extra map[string]string) memory.Entry {
	s.seq++
	e := memory.Entry{
		ID:        uuid.NewString(),
		SessionID: s.sessionID,
		Seq:       s.seq,
		CreatedAt: s.clock(),
		Record:    rec,
		Extra:     maps.Clone(extra),
	}
	s.entries = append(s.entries, e)
	return e
}

func (s *implStore) seedLocked() int {
	recs := memory.KnowledgeRecords(s.principles)
	for _, rec := range recs {
		s.addLocked(rec, nil)
	}
	return len(recs)
}

func cloneEntry(e memory.Entry) memory.Entry {
	e.Extra = maps.Clone(e.Extra)
	return e
}
