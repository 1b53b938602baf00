package catalog

import (
	"errors"
	"fmt"
)

// ErrTrackNotFound is returned when a referenced id is not in the catalog,
// typically because it was deleted after being queued or recorded.
var ErrTrackNotFound = errors.New("track not found")

// QueryError wraps an engine-level failure of a catalog statement.
// It is recoverable: callers report it and carry on.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Err: err}
}

func notFound(id int64) error {
	return fmt.Errorf("%w: id %d", ErrTrackNotFound, id)
}
