package review

import "errors"

var (
	ErrEmptyText          = errors.New("text must not be empty")
	ErrUnknownSection     = errors.New("unknown paper section")
	ErrUnknownFormat      = errors.New("unknown publication format")
	ErrInvalidModelOutput = errors.New("model returned an invalid review")
	ErrReviewGeneration   = errors.New("failed to analyze section")
)
