package commonmark

import "github.com/goliatone/go-doctree/nodes"

// sectionLevels maps heading depth to the section currently open at that
// depth. Level 0 always maps to the document root, so every heading is
// guaranteed a parent regardless of how levels skip around.
type sectionLevels struct {
	open map[int]nodes.Node
}

func newSectionLevels(root *nodes.Document) *sectionLevels {
	return &sectionLevels{open: map[int]nodes.Node{0: root}}
}

// add attaches section beneath the nearest open section at a depth strictly
// lower than level, records it as the open section for that level, and prunes
// every deeper level: those sections are closed and can no longer parent
// future headings. Skipped levels (an H1 followed directly by an H3) parent
// under the nearest lower level without error.
func (s *sectionLevels) add(section *nodes.Section, level int) {
	parentLevel := 0
	for open := range s.open {
		if open < level && open > parentLevel {
			parentLevel = open
		}
	}

	s.open[parentLevel].Append(section)
	s.open[level] = section

	for open := range s.open {
		if open > level {
			delete(s.open, open)
		}
	}
}

// openAt reports whether node is the section currently open at level. Used
// to detect a sibling heading arriving while its predecessor is still the
// cursor.
func (s *sectionLevels) openAt(level int, node nodes.Node) bool {
	return s.open[level] == node
}
