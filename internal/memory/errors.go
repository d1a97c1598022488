package memory

import (
	"errors"
	"fmt"
)

var ErrNilRecord = errors.New("memory: record is nil")

// ConfigurationError is returned when a store is constructed without the
// settings it needs. It is not recoverable.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("memory: invalid configuration: %s %s", e.Field, e.Reason)
}
