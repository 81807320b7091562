package nodes

// Section groups a title with the body content that follows it. Names holds
// the normalized identifiers accumulated from the title text; IDs holds the
// unique anchors assigned by the owning document.
type Section struct {
	element
	Names []string
	IDs   []string
}

func NewSection() *Section {
	n := &Section{}
	n.init(n)
	return n
}

func (*Section) Tag() string { return "section" }

// Title is the heading element of a section.
type Title struct {
	element
}

func NewTitle() *Title {
	n := &Title{}
	n.init(n)
	return n
}

func (*Title) Tag() string { return "title" }

// Paragraph holds a run of inline content.
type Paragraph struct {
	element
}

func NewParagraph() *Paragraph {
	n := &Paragraph{}
	n.init(n)
	return n
}

func (*Paragraph) Tag() string { return "paragraph" }

// Emphasis marks inline content for light emphasis (typically italics).
type Emphasis struct {
	element
}

func NewEmphasis() *Emphasis {
	n := &Emphasis{}
	n.init(n)
	return n
}

func (*Emphasis) Tag() string { return "emphasis" }

// Strong marks inline content for strong emphasis (typically bold).
type Strong struct {
	element
}

func NewStrong() *Strong {
	n := &Strong{}
	n.init(n)
	return n
}

func (*Strong) Tag() string { return "strong" }

// Literal marks inline content rendered verbatim, such as code spans.
type Literal struct {
	element
}

func NewLiteral() *Literal {
	n := &Literal{}
	n.init(n)
	return n
}

func (*Literal) Tag() string { return "literal" }

// CrossReference wraps a hyperlink so downstream resolvers can rewrite the
// target before rendering. The inner Reference carries the resolved URI.
type CrossReference struct {
	element
	Target string
	Title  string
}

func NewCrossReference() *CrossReference {
	n := &CrossReference{}
	n.init(n)
	return n
}

func (*CrossReference) Tag() string { return "cross_reference" }

// Reference is a resolved hyperlink.
type Reference struct {
	element
	RefURI string
	Title  string
}

func NewReference() *Reference {
	n := &Reference{}
	n.init(n)
	return n
}

func (*Reference) Tag() string { return "reference" }

// Image embeds an external image by URI. Alt carries the alternate text when
// the source markup provided a title.
type Image struct {
	element
	URI string
	Alt string
}

func NewImage() *Image {
	n := &Image{}
	n.init(n)
	return n
}

func (*Image) Tag() string { return "image" }

// BulletList is an unordered list.
type BulletList struct {
	element
}

func NewBulletList() *BulletList {
	n := &BulletList{}
	n.init(n)
	return n
}

func (*BulletList) Tag() string { return "bullet_list" }

// EnumeratedList is an ordered list.
type EnumeratedList struct {
	element
}

func NewEnumeratedList() *EnumeratedList {
	n := &EnumeratedList{}
	n.init(n)
	return n
}

func (*EnumeratedList) Tag() string { return "enumerated_list" }

// ListItem is a single entry of a bullet or enumerated list.
type ListItem struct {
	element
}

func NewListItem() *ListItem {
	n := &ListItem{}
	n.init(n)
	return n
}

func (*ListItem) Tag() string { return "list_item" }

// LiteralBlock holds preformatted block content such as code. The text is
// stored verbatim rather than as child nodes; Language records the fence info
// string when one was present.
type LiteralBlock struct {
	element
	Text     string
	Language string
}

func NewLiteralBlock(text string) *LiteralBlock {
	n := &LiteralBlock{Text: text}
	n.init(n)
	return n
}

func (*LiteralBlock) Tag() string { return "literal_block" }

func (n *LiteralBlock) PlainText() string { return n.Text }

// BlockQuote holds quoted block content.
type BlockQuote struct {
	element
}

func NewBlockQuote() *BlockQuote {
	n := &BlockQuote{}
	n.init(n)
	return n
}

func (*BlockQuote) Tag() string { return "block_quote" }

// Raw passes source markup through untouched, tagged with its format so
// writers can decide whether to emit it.
type Raw struct {
	element
	Format string
	Text   string
}

func NewRaw(format, text string) *Raw {
	n := &Raw{Format: format, Text: text}
	n.init(n)
	return n
}

func (*Raw) Tag() string { return "raw" }

func (n *Raw) PlainText() string { return n.Text }

// Text is a leaf holding literal character data.
type Text struct {
	element
	Value string
}

func NewText(value string) *Text {
	n := &Text{Value: value}
	n.init(n)
	return n
}

func (*Text) Tag() string { return "text" }

func (n *Text) PlainText() string { return n.Value }

// Transition is a divider between body elements, produced from thematic
// breaks.
type Transition struct {
	element
}

func NewTransition() *Transition {
	n := &Transition{}
	n.init(n)
	return n
}

func (*Transition) Tag() string { return "transition" }
