package http

import (
	"physics-writing-assistant/internal/review"
	"physics-writing-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc review.UseCase
}

// New creates a new HTTP handler for the review domain.
func New(l log.Logger, uc review.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
