package persona

import "errors"

var (
	ErrUnknownPersona   = errors.New("unknown persona")
	ErrDuplicatePersona = errors.New("persona selected more than once")
)
