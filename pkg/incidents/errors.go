package incidents

import (
	"errors"
	"fmt"
)

var (
	// ErrScreenRequired rejects incident creation without a screen reference.
	ErrScreenRequired = errors.New("incident requires a screen reference")

	// ErrInvalidStatus rejects a status update outside the known lifecycle.
	ErrInvalidStatus = errors.New("unknown incident status")
)

// DuplicateError rejects a second open incident for the same screen. The
// API layer maps it to a conflict response naming the offending field.
type DuplicateError struct {
	Collection string
	Field      string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("record with this %s already exists in %s", e.Field, e.Collection)
}
