package errors

import "fmt"

// ErrNotFound indicates a requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrOutOfRange indicates a cart mutation targeted an index outside the snapshot
type ErrOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for snapshot of length %d", e.Index, e.Length)
}
