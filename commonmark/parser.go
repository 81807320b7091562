package commonmark

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-doctree/internal/logging"
	"github.com/goliatone/go-doctree/nodes"
	"github.com/goliatone/go-doctree/pkg/interfaces"
)

// Parser converts CommonMark source into a document tree, delegating
// tokenization to the goldmark engine. The parser is intentionally stateless
// so callers can reuse a single instance across conversions without
// additional locking; every conversion run owns its cursor and section map.
type Parser struct {
	options Options
	md      goldmark.Markdown
	logger  interfaces.Logger
}

// Options controls engine construction. Extensions are named goldmark
// extensions; unsupported names are ignored. Logger receives non-fatal
// conversion diagnostics and defaults to a no-op.
type Options struct {
	Extensions []string
	Logger     interfaces.Logger
}

// NewParser constructs a parser with the supplied options.
func NewParser(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Parser{
		options: opts,
		md:      newGoldmarkEngine(opts),
		logger:  logger,
	}
}

// Parse tokenizes source and populates doc with the converted tree. A
// trailing newline is appended before parsing so the final block is
// terminated regardless of input. Parse satisfies interfaces.Converter.
func (p *Parser) Parse(source []byte, doc *nodes.Document) error {
	if doc == nil {
		return ErrNilDocument
	}

	buf := make([]byte, 0, len(source)+1)
	buf = append(buf, source...)
	buf = append(buf, '\n')

	root := p.md.Parser().Parse(text.NewReader(buf))

	st := newState(buf, doc, p.logger)
	return st.walk(root)
}

// newGoldmarkEngine builds a goldmark.Markdown for AST production. Renderer
// configuration is irrelevant here; the engine is only used to tokenize.
func newGoldmarkEngine(opts Options) goldmark.Markdown {
	engineOptions := []goldmark.Option{}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// KnownExtension reports whether name maps to a supported goldmark extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
