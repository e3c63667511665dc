package api

import (
	"errors"
)

var (
	// ErrNotRelevant is returned when an event doesn't match any of the configured filters and can be ignored
	ErrNotRelevant = errors.New("the event is not relevant")
)

// FatalError marks an error that retrying cannot fix, like missing configuration
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewFatalError wraps err so Retry stops immediately instead of consuming its attempts
func NewFatalError(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err or any error it wraps is a FatalError
func IsFatal(err error) bool {
	var fatalError *FatalError
	return errors.As(err, &fatalError)
}
