package commonmark

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/goliatone/go-doctree/nodes"
	"github.com/goliatone/go-doctree/pkg/interfaces"
)

// state carries the mutable traversal context for a single conversion run:
// the output document, the insertion cursor, the open-section map, and the
// stack of cursors saved while containers are open. A state never outlives
// its Parse call and is never shared between conversions.
type state struct {
	source   []byte
	doc      *nodes.Document
	cursor   nodes.Node
	sections *sectionLevels
	saved    []nodes.Node
	newlines []int
	logger   interfaces.Logger
}

func newState(source []byte, doc *nodes.Document, logger interfaces.Logger) *state {
	return &state{
		source:   source,
		doc:      doc,
		cursor:   doc,
		sections: newSectionLevels(doc),
		newlines: newlineIndex(source),
		logger:   logger,
	}
}

// handler pairs the enter and exit routines for one AST kind. A nil enter
// defaults to a no-op; a nil exit falls back to exitDefault, which restores
// the cursor saved when the container was entered.
type handler struct {
	enter func(st *state, n ast.Node) error
	exit  func(st *state, n ast.Node) error
}

// handlers maps each recognized AST kind to its enter/exit pair. Kinds absent
// from the table degrade to the default handlers so conversion never fails on
// node types it does not know about.
var handlers = map[ast.NodeKind]handler{
	ast.KindDocument:        {enter: enterNop, exit: exitNop},
	ast.KindHeading:         {enter: enterHeading, exit: exitHeading},
	ast.KindText:            {enter: enterText},
	ast.KindString:          {enter: enterString},
	ast.KindParagraph:       {enter: enterParagraph},
	ast.KindTextBlock:       {enter: enterParagraph},
	ast.KindEmphasis:        {enter: enterEmphasis},
	ast.KindCodeSpan:        {enter: enterCodeSpan},
	ast.KindLink:            {enter: enterLink},
	ast.KindImage:           {enter: enterImage},
	ast.KindList:            {enter: enterList},
	ast.KindListItem:        {enter: enterListItem},
	ast.KindFencedCodeBlock: {enter: enterFencedCodeBlock},
	ast.KindCodeBlock:       {enter: enterCodeBlock},
	ast.KindBlockquote:      {enter: enterBlockQuote},
	ast.KindRawHTML:         {enter: enterRawHTML},
	ast.KindThematicBreak:   {enter: enterThematicBreak},
}

// containerKinds classifies node kinds that hold children and therefore need
// matched enter/exit handling. Kinds outside the table are classified by
// whether they actually carry children, so unknown container types still
// close properly.
var containerKinds = map[ast.NodeKind]bool{
	ast.KindDocument:   true,
	ast.KindHeading:    true,
	ast.KindParagraph:  true,
	ast.KindTextBlock:  true,
	ast.KindBlockquote: true,
	ast.KindList:       true,
	ast.KindListItem:   true,
	ast.KindEmphasis:   true,
	ast.KindCodeSpan:   true,
	ast.KindLink:       true,
	ast.KindImage:      true,
}

func isContainer(n ast.Node) bool {
	if containerKinds[n.Kind()] {
		return true
	}
	return n.HasChildren()
}

// walk dispatches the node's enter event, descends into children when the
// node is a container, and dispatches the exit event. Leaves receive exactly
// one event.
func (st *state) walk(n ast.Node) error {
	h := handlers[n.Kind()]

	if h.enter != nil {
		if err := h.enter(st, n); err != nil {
			return err
		}
	}

	if !isContainer(n) {
		return nil
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if err := st.walk(child); err != nil {
			return err
		}
	}

	if h.exit != nil {
		return h.exit(st, n)
	}
	return st.exitDefault(n)
}

// exitDefault closes a container without a dedicated exit handler. When an
// enter handler descended the cursor, the cursor saved on entry is restored;
// a container nobody entered was skipped entirely and is worth a diagnostic.
func (st *state) exitDefault(n ast.Node) error {
	if h := handlers[n.Kind()]; h.enter != nil {
		st.cursor = st.pop()
		return nil
	}
	st.logger.Warn("container node skipped", "kind", n.Kind().String())
	return nil
}

// descend appends n at the cursor and moves the cursor into it, saving the
// previous cursor so the matching exit can restore it.
func (st *state) descend(n nodes.Node) {
	st.cursor.Append(n)
	st.push(st.cursor)
	st.cursor = n
}

func (st *state) push(n nodes.Node) {
	st.saved = append(st.saved, n)
}

func (st *state) pop() nodes.Node {
	if len(st.saved) == 0 {
		return st.doc
	}
	top := st.saved[len(st.saved)-1]
	st.saved = st.saved[:len(st.saved)-1]
	return top
}

func enterNop(*state, ast.Node) error { return nil }
func exitNop(*state, ast.Node) error  { return nil }

func enterHeading(st *state, n ast.Node) error {
	heading := n.(*ast.Heading)

	// A sibling heading at the same depth must not nest its section inside
	// the previous one: move up before attaching.
	if sec, ok := st.cursor.(*nodes.Section); ok && st.sections.openAt(heading.Level, sec) {
		st.cursor = sec.Parent()
	}

	line := st.lineFor(n)

	title := nodes.NewTitle()
	title.SetLine(line)

	section := nodes.NewSection()
	section.SetLine(line)
	section.Append(title)

	st.sections.add(section, heading.Level)

	// Subsequent text events accumulate inside the title until the heading
	// exits.
	st.cursor = title
	return nil
}

func exitHeading(st *state, n ast.Node) error {
	title, ok := st.cursor.(*nodes.Title)
	if !ok {
		return &CursorInvariantError{Handler: "heading exit", Expected: "title", Got: st.cursor.Tag()}
	}
	section, ok := title.Parent().(*nodes.Section)
	if !ok {
		return &CursorInvariantError{Handler: "heading exit", Expected: "section parent", Got: title.Parent().Tag()}
	}

	// The whole accumulated title text determines the section name and its
	// implicit cross-reference target.
	name := nodes.FullyNormalizeName(title.PlainText())
	section.Names = append(section.Names, name)
	st.doc.NoteImplicitTarget(section)

	st.cursor = section
	return nil
}

func enterText(st *state, n ast.Node) error {
	t := n.(*ast.Text)
	if value := t.Segment.Value(st.source); len(value) > 0 {
		st.cursor.Append(nodes.NewText(string(value)))
	}
	// goldmark flags line breaks on the preceding text instead of emitting
	// softbreak nodes; the converted tree keeps the literal newline.
	if t.SoftLineBreak() || t.HardLineBreak() {
		st.cursor.Append(nodes.NewText("\n"))
	}
	return nil
}

func enterString(st *state, n ast.Node) error {
	s := n.(*ast.String)
	if len(s.Value) > 0 {
		st.cursor.Append(nodes.NewText(string(s.Value)))
	}
	return nil
}

func enterParagraph(st *state, n ast.Node) error {
	p := nodes.NewParagraph()
	p.SetLine(st.lineFor(n))
	st.descend(p)
	return nil
}

func enterEmphasis(st *state, n ast.Node) error {
	if n.(*ast.Emphasis).Level >= 2 {
		st.descend(nodes.NewStrong())
		return nil
	}
	st.descend(nodes.NewEmphasis())
	return nil
}

func enterCodeSpan(st *state, _ ast.Node) error {
	st.descend(nodes.NewLiteral())
	return nil
}

func enterLink(st *state, n ast.Node) error {
	link := n.(*ast.Link)
	target := string(link.Destination)

	ref := nodes.NewReference()
	ref.RefURI = target

	wrapper := nodes.NewCrossReference()
	wrapper.Target = target

	if title := string(link.Title); title != "" {
		wrapper.Title = title
		ref.Title = title
	}

	st.cursor.Append(wrapper)
	wrapper.Append(ref)

	// The link text accumulates inside the inner reference; exit restores
	// the cursor saved here.
	st.push(st.cursor)
	st.cursor = ref
	return nil
}

func enterImage(st *state, n ast.Node) error {
	img := n.(*ast.Image)

	node := nodes.NewImage()
	node.URI = string(img.Destination)
	if title := string(img.Title); title != "" {
		node.Alt = title
	}

	st.descend(node)
	return nil
}

func enterList(st *state, n ast.Node) error {
	var node nodes.Node
	if n.(*ast.List).IsOrdered() {
		node = nodes.NewEnumeratedList()
	} else {
		node = nodes.NewBulletList()
	}
	node.SetLine(st.lineFor(n))
	st.descend(node)
	return nil
}

func enterListItem(st *state, n ast.Node) error {
	item := nodes.NewListItem()
	item.SetLine(st.lineFor(n))
	st.descend(item)
	return nil
}

func enterFencedCodeBlock(st *state, n ast.Node) error {
	fenced := n.(*ast.FencedCodeBlock)

	node := nodes.NewLiteralBlock(st.blockText(n))
	if language := fenced.Language(st.source); len(language) > 0 {
		node.Language = string(language)
	}
	node.SetLine(st.lineFor(n))

	st.cursor.Append(node)
	return nil
}

func enterCodeBlock(st *state, n ast.Node) error {
	node := nodes.NewLiteralBlock(st.blockText(n))
	node.SetLine(st.lineFor(n))
	st.cursor.Append(node)
	return nil
}

func enterBlockQuote(st *state, n ast.Node) error {
	quote := nodes.NewBlockQuote()
	quote.SetLine(st.lineFor(n))
	st.descend(quote)
	return nil
}

func enterRawHTML(st *state, n ast.Node) error {
	raw := n.(*ast.RawHTML)

	var sb strings.Builder
	for i := 0; i < raw.Segments.Len(); i++ {
		seg := raw.Segments.At(i)
		sb.Write(seg.Value(st.source))
	}

	node := nodes.NewRaw("html", sb.String())
	if raw.Segments.Len() > 0 {
		node.SetLine(st.lineAt(raw.Segments.At(0).Start))
	}

	st.cursor.Append(node)
	return nil
}

func enterThematicBreak(st *state, _ ast.Node) error {
	st.cursor.Append(nodes.NewTransition())
	return nil
}

// blockText joins the node's line segments and strips at most one trailing
// newline, matching CommonMark code-block literal semantics.
func (st *state) blockText(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(st.source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// lineFor resolves the 1-based source line of a block node, or 0 when the
// node carries no line segments (container blocks such as lists).
func (st *state) lineFor(n ast.Node) int {
	if n.Type() != ast.TypeBlock {
		return 0
	}
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0
	}
	return st.lineAt(lines.At(0).Start)
}

// lineAt converts a byte offset into a 1-based line number by counting the
// newlines that precede it.
func (st *state) lineAt(offset int) int {
	return sort.SearchInts(st.newlines, offset) + 1
}

func newlineIndex(source []byte) []int {
	var index []int
	for i, b := range source {
		if b == '\n' {
			index = append(index, i)
		}
	}
	return index
}
