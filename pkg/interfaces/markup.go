package interfaces

import "github.com/goliatone/go-doctree/nodes"

// Converter parses raw markup source and populates the supplied document
// tree. Implementations must be safe for concurrent use; all per-conversion
// state belongs to the call, not the converter.
type Converter interface {
	Parse(source []byte, doc *nodes.Document) error
}

// FrontMatter captures document metadata extracted ahead of conversion.
// Custom holds keys without a dedicated field; Raw merges everything.
type FrontMatter struct {
	Title  string
	Slug   string
	Tags   []string
	Draft  bool
	Custom map[string]any
	Raw    map[string]any
}
