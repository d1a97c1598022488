package http

import (
	"physics-writing-assistant/internal/discussion"
	"physics-writing-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc discussion.UseCase
}

// New creates a new HTTP handler for the discussion domain.
func New(l log.Logger, uc discussion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
