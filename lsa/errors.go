package lsa

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("lsa: malformed input")

// FormatError reports the first malformed line of an input.
type FormatError struct {
	Line   int    // 1-based line number
	Text   string // offending line, trimmed
	Reason string // what was wrong
	Err    error  // underlying cause, e.g. a strconv error; may be nil
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lsa: line %d: %s: %v", e.Line, e.Reason, e.Err)
	}

	return fmt.Sprintf("lsa: line %d: %s", e.Line, e.Reason)
}

// Is makes errors.Is(err, ErrFormat) true for any *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }
