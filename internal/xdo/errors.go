package xdo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStreamExhausted is returned when a parser needs more output lines than remain.
	ErrStreamExhausted = errors.New("output stream exhausted")

	// ErrNotImplemented is recorded by sub-commands the builder declares but does not support.
	ErrNotImplemented = errors.New("not implemented")
)

// FormatError reports an output line that does not match the expected format.
type FormatError struct {
	Line string
	Want string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s %q: %v", e.Want, e.Line, e.Err)
	}
	return fmt.Sprintf("malformed %s %q", e.Want, e.Line)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ExitError describes a batch whose process exited with a non-zero status.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("xdotool exited with status %d", e.Code)
	}
	return fmt.Sprintf("xdotool exited with status %d: %s", e.Code, msg)
}
