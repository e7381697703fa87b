package core

import "errors"

var (
	// Operational errors for control flow.
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrInvalidURL = errors.New("invalid url")
	ErrExhausted  = errors.New("short code generation exhausted")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err indicates a uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsExhausted reports whether err means the generator ran out of attempts.
func IsExhausted(err error) bool { return errors.Is(err, ErrExhausted) }
