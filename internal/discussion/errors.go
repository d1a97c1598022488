package discussion

import (
	"errors"
	"fmt"

	"physics-writing-assistant/internal/persona"
)

var (
	ErrNoPersonas           = errors.New("at least one persona is required")
	ErrEmptyText            = errors.New("text must not be empty")
	ErrUnknownPersona       = persona.ErrUnknownPersona
	ErrDuplicatePersona     = persona.ErrDuplicatePersona
	ErrInvalidMaxIterations = errors.New("max iterations must be at least 1")
	ErrDiscussionGeneration = errors.New("failed to generate discussion")
	ErrRunTimeout           = errors.New("discussion run timed out")
	ErrDiscussionNotFound   = errors.New("discussion not found")
)

// GenerationError reports a failed generation call inside a stage. It
// matches both ErrDiscussionGeneration and the underlying cause.
type GenerationError struct {
	Stage     Phase
	PersonaID persona.ID
	Err       error
}

func (e *GenerationError) Error() string {
	if e.PersonaID != "" {
		return fmt.Sprintf("%s stage generation failed for %s: %v", e.Stage, e.PersonaID, e.Err)
	}
	return fmt.Sprintf("%s stage generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrDiscussionGeneration, e.Err}
}
