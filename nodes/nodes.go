package nodes

import "strings"

// Node is the contract shared by every element of the document tree. Each
// node owns an ordered list of children and holds a reference to its single
// parent; trees are built exclusively through Append so the parent pointer
// can never disagree with the child list.
type Node interface {
	// Tag returns the element name used for dumps and diagnostics.
	Tag() string
	Parent() Node
	Children() []Node
	// Append attaches children as the last elements of the node, claiming
	// ownership (a child belongs to exactly one parent).
	Append(children ...Node)
	// Line reports the 1-based source line the node originated from, or 0
	// when unknown.
	Line() int
	SetLine(line int)
	// PlainText returns the concatenated text content of the subtree.
	PlainText() string

	attach(parent Node)
}

// element carries the tree bookkeeping common to all node variants. The self
// reference is set by the constructors so Append can hand children a pointer
// to the concrete node rather than the embedded struct.
type element struct {
	self     Node
	parent   Node
	children []Node
	line     int
}

func (e *element) init(self Node) {
	e.self = self
}

func (e *element) Parent() Node {
	return e.parent
}

func (e *element) Children() []Node {
	return e.children
}

func (e *element) Append(children ...Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.attach(e.self)
		e.children = append(e.children, child)
	}
}

func (e *element) attach(parent Node) {
	e.parent = parent
}

func (e *element) Line() int {
	return e.line
}

func (e *element) SetLine(line int) {
	e.line = line
}

func (e *element) PlainText() string {
	var sb strings.Builder
	for _, child := range e.children {
		sb.WriteString(child.PlainText())
	}
	return sb.String()
}
