package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/internal/memory"
	"physics-writing-assistant/internal/persona"
	"physics-writing-assistant/pkg/llmprovider"
	"physics-writing-assistant/pkg/log"
)

// Config tunes the orchestration loop.
type Config struct {
	MaxIterations   int
	RunTimeout      time.Duration
	ResultCacheSize int
	ResultTTL       time.Duration
}

// implUseCase is the private implementation of discussion.UseCase.
type implUseCase struct {
	l        log.Logger
	gen      llmprovider.Generator
	newStore memory.Factory
	registry *persona.Registry
	rec      discussion.Recorder
	cfg      Config
	results  *expirable.LRU[string, discussion.RunOutput]
	stages   map[discussion.Phase]discussion.Stage
	now      func() time.Time
}

// New creates a discussion UseCase. rec may be nil.
func New(l log.Logger, gen llmprovider.Generator, newStore memory.Factory, registry *persona.Registry, rec discussion.Recorder, cfg Config) *implUseCase {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = DefaultRunTimeout
	}
	if cfg.ResultCacheSize <= 0 {
		cfg.ResultCacheSize = DefaultResultCacheSize
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = DefaultResultTTL
	}
	if rec == nil {
		rec = nopRecorder{}
	}

	uc := &implUseCase{
		l:        l,
		gen:      gen,
		newStore: newStore,
		registry: registry,
		rec:      rec,
		cfg:      cfg,
		results:  expirable.NewLRU[string, discussion.RunOutput](cfg.ResultCacheSize, nil, cfg.ResultTTL),
		now:      time.Now,
	}
	uc.stages = map[discussion.Phase]discussion.Stage{
		discussion.PhaseInit:       uc.seed,
		discussion.PhasePlanning:   uc.plan,
		discussion.PhaseDiscussing: uc.turns,
		discussion.PhaseReflecting: uc.reflect,
	}
	return uc
}

type nopRecorder struct{}

func (nopRecorder) ObserveRun(string, int)       {}
func (nopRecorder) ObserveStage(string, float64) {}
