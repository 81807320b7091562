package commonmark

import (
	"errors"
	"fmt"
)

var (
	ErrNilDocument     = errors.New("commonmark: target document is nil")
	ErrCursorInvariant = errors.New("commonmark: cursor invariant violated")
)

// CursorInvariantError reports an internal consistency failure: a handler
// found the traversal cursor on an unexpected node. This is a bug in the
// conversion pipeline, never a consequence of user input, so callers should
// treat it as fatal.
type CursorInvariantError struct {
	Handler  string
	Expected string
	Got      string
}

func (e *CursorInvariantError) Error() string {
	if e == nil {
		return ErrCursorInvariant.Error()
	}
	return fmt.Sprintf("%s: %s expected cursor on %s, got %s",
		ErrCursorInvariant.Error(), e.Handler, e.Expected, e.Got)
}

func (e *CursorInvariantError) Unwrap() error {
	return ErrCursorInvariant
}
