package nodes

import (
	"strings"
	"testing"
)

func TestAppendSetsSingleParent(t *testing.T) {
	doc := NewDocument()
	section := NewSection()
	title := NewTitle()

	doc.Append(section)
	section.Append(title)

	if section.Parent() != Node(doc) {
		t.Fatalf("expected section parent to be the document, got %v", section.Parent())
	}
	if title.Parent() != Node(section) {
		t.Fatalf("expected title parent to be the section, got %v", title.Parent())
	}
	if len(doc.Children()) != 1 || doc.Children()[0] != Node(section) {
		t.Fatalf("expected document children to hold the section, got %v", doc.Children())
	}
}

func TestPlainTextConcatenatesSubtree(t *testing.T) {
	p := NewParagraph()
	em := NewEmphasis()
	em.Append(NewText("emphasised"))
	p.Append(NewText("plain "), em, NewText(" tail"))

	if got := p.PlainText(); got != "plain emphasised tail" {
		t.Fatalf("PlainText mismatch, got %q", got)
	}
}

func TestPlainTextForLiteralVariants(t *testing.T) {
	block := NewLiteralBlock("code body")
	if got := block.PlainText(); got != "code body" {
		t.Fatalf("literal block PlainText mismatch, got %q", got)
	}

	raw := NewRaw("html", "<b>")
	if got := raw.PlainText(); got != "<b>" {
		t.Fatalf("raw PlainText mismatch, got %q", got)
	}
}

func TestFullyNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  Mixed\tCASE \n spacing  ", "mixed case spacing"},
		{"already normal", "already normal"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FullyNormalizeName(tc.in); got != tc.want {
			t.Fatalf("FullyNormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeIDProducesSlug(t *testing.T) {
	if got := MakeID("hello world"); got != "hello-world" {
		t.Fatalf("MakeID mismatch, got %q", got)
	}
	if got := MakeID(""); got == "" {
		t.Fatal("expected fallback id for empty name")
	}
}

func TestNoteImplicitTargetAssignsUniqueIDs(t *testing.T) {
	doc := NewDocument()

	first := NewSection()
	first.Names = append(first.Names, "title")
	doc.NoteImplicitTarget(first)

	second := NewSection()
	second.Names = append(second.Names, "title")
	doc.NoteImplicitTarget(second)

	if len(first.IDs) != 1 || len(second.IDs) != 1 {
		t.Fatalf("expected one id per section, got %v / %v", first.IDs, second.IDs)
	}
	if first.IDs[0] == second.IDs[0] {
		t.Fatalf("expected unique ids, both got %q", first.IDs[0])
	}

	id, ok := doc.LookupTarget("title")
	if !ok {
		t.Fatal("expected target registration for name")
	}
	if id != first.IDs[0] {
		t.Fatalf("expected first section to own the target, got %q want %q", id, first.IDs[0])
	}
}

func TestNoteImplicitTargetIgnoresUnnamedSections(t *testing.T) {
	doc := NewDocument()
	section := NewSection()

	doc.NoteImplicitTarget(section)

	if len(section.IDs) != 0 {
		t.Fatalf("expected no ids for unnamed section, got %v", section.IDs)
	}
}

func TestPFormatRendersTreeShape(t *testing.T) {
	doc := NewDocument()

	section := NewSection()
	section.Names = append(section.Names, "title")
	doc.NoteImplicitTarget(section)

	title := NewTitle()
	title.Append(NewText("Title"))
	section.Append(title)

	p := NewParagraph()
	p.Append(NewText("Body text."))
	section.Append(p)
	doc.Append(section)

	got := PFormat(doc)
	want := strings.Join([]string{
		`<document>`,
		`    <section ids="title" names="title">`,
		`        <title>`,
		`            Title`,
		`        <paragraph>`,
		`            Body text.`,
		``,
	}, "\n")

	if got != want {
		t.Fatalf("PFormat mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPFormatEscapesNewlines(t *testing.T) {
	p := NewParagraph()
	p.Append(NewText("a\nb"))

	if got := PFormat(p); !strings.Contains(got, `a\nb`) {
		t.Fatalf("expected escaped newline in output, got %q", got)
	}
}
