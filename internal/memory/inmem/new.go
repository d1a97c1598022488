package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/pkg/log"
)

// Config configures a process-resident store.
type Config struct {
	// AccessKey is required; a store without it refuses to start.
	AccessKey string
	// Principles seeds the knowledge base. Defaults to memory.WritingPrinciples.
	Principles []memory.Principle
	Clock      func() time.Time
	Logger     log.Logger
}

type implStore struct {
	mu         sync.RWMutex
	sessionID  string
	seq        uint64
	entries    []memory.Entry
	principles []memory.Principle
	clock      func() time.Time
	l          log.Logger
}

// New creates an empty store with a fresh session.
func New(cfg Config) (*implStore, error) {
	if cfg.AccessKey == "" {
		return nil, &memory.ConfigurationError{Field: "access key", Reason: "is required"}
	}
	if cfg.Principles == nil {
		cfg.Principles = memory.WritingPrinciples
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNop()
	}

	s := &implStore{
		sessionID:  newSessionID(),
		principles: cfg.Principles,
		clock:      cfg.Clock,
		l:          cfg.Logger,
	}
	s.l.Debug(context.Background(), "memory store initialized", "session_id", s.sessionID)
	return s, nil
}

// NewFactory returns a memory.Factory that builds one store per call. The
// configuration is validated up front so a missing key fails at startup.
func NewFactory(cfg Config) (memory.Factory, error) {
	if _, err := New(cfg); err != nil {
		return nil, err
	}
	return func(ctx context.Context) (memory.Store, error) {
		return New(cfg)
	}, nil
}

func newSessionID() string {
	return "session_" + uuid.NewString()
}
