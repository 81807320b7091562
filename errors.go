package doctree

import "github.com/goliatone/go-doctree/commonmark"

var (
	ErrNilDocument     = commonmark.ErrNilDocument
	ErrCursorInvariant = commonmark.ErrCursorInvariant
)
