package nodes

import "fmt"

// Document is the root of a document tree. It tracks the implicit
// cross-reference targets registered while the tree is built so every
// section can be addressed by a stable, unique identifier.
type Document struct {
	element
	targets map[string]string
	ids     map[string]struct{}
}

func NewDocument() *Document {
	n := &Document{
		targets: map[string]string{},
		ids:     map[string]struct{}{},
	}
	n.init(n)
	return n
}

func (*Document) Tag() string { return "document" }

// NoteImplicitTarget registers the section's most recent name as an implicit
// cross-reference target and assigns the section a document-unique ID derived
// from that name. The first section to claim a name wins the plain ID;
// later sections with the same name receive a numeric suffix.
func (d *Document) NoteImplicitTarget(section *Section) {
	if section == nil || len(section.Names) == 0 {
		return
	}

	name := section.Names[len(section.Names)-1]
	id := d.uniqueID(MakeID(name))
	d.ids[id] = struct{}{}
	section.IDs = append(section.IDs, id)

	if _, taken := d.targets[name]; !taken {
		d.targets[name] = id
	}
}

// LookupTarget resolves a normalized name to the ID of the section that
// first registered it.
func (d *Document) LookupTarget(name string) (string, bool) {
	id, ok := d.targets[name]
	return id, ok
}

func (d *Document) uniqueID(base string) string {
	if _, taken := d.ids[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, taken := d.ids[candidate]; !taken {
			return candidate
		}
	}
}
