package domain

import (
	"errors"
	"fmt"
)

// InvalidStateError reports that an accessor was invoked when the CI run is
// not pull-request shaped. It is a contract violation by the caller, who is
// expected to check IsPR/UseEventDSL before reading PR fields.
type InvalidStateError struct {
	Accessor string
	Source   string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s was called on %s when the run is not pull-request shaped", e.Accessor, e.Source)
}

// NewInvalidStateError creates a new InvalidStateError.
func NewInvalidStateError(accessor, source string) *InvalidStateError {
	return &InvalidStateError{
		Accessor: accessor,
		Source:   source,
	}
}

// IsInvalidState checks if an error is or wraps an InvalidStateError.
func IsInvalidState(err error) bool {
	if err == nil {
		return false
	}
	var invalidStateErr *InvalidStateError
	return errors.As(err, &invalidStateErr)
}
