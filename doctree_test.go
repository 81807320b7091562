package doctree

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-doctree/nodes"
)

func newModule(t *testing.T, cfg Config) *Module {
	t.Helper()

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{"marquee"}

	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestConvertProducesDocumentTree(t *testing.T) {
	module := newModule(t, DefaultConfig())

	source := "---\ntitle: Guide\n---\n# Title\n\nBody text.\n"
	doc, meta, err := module.Convert(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if meta == nil || meta.Title != "Guide" {
		t.Fatalf("expected front matter title, got %+v", meta)
	}

	if len(doc.Children()) != 1 {
		t.Fatalf("expected one section, got %d children", len(doc.Children()))
	}
	section, ok := doc.Children()[0].(*nodes.Section)
	if !ok {
		t.Fatalf("expected section, got %s", doc.Children()[0].Tag())
	}
	if len(section.Names) != 1 || section.Names[0] != "title" {
		t.Fatalf("section names mismatch: %v", section.Names)
	}

	if _, ok := doc.LookupTarget("title"); !ok {
		t.Fatal("expected implicit target registration")
	}
}

func TestConvertWithoutFrontMatter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrontMatter = false
	module := newModule(t, cfg)

	doc, meta, err := module.Convert(context.Background(), []byte("plain paragraph\n"))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if meta != nil {
		t.Fatalf("expected nil metadata when front matter is disabled, got %+v", meta)
	}
	if len(doc.Children()) != 1 {
		t.Fatalf("expected one paragraph, got %d children", len(doc.Children()))
	}
}

func TestConvertHonoursContextCancellation(t *testing.T) {
	module := newModule(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := module.Convert(ctx, []byte("# x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConverterExposesReusableParser(t *testing.T) {
	module := newModule(t, DefaultConfig())

	converter := module.Converter()
	if converter == nil {
		t.Fatal("expected converter")
	}

	doc := nodes.NewDocument()
	if err := converter.Parse([]byte("# A\n"), doc); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Children()) != 1 {
		t.Fatalf("expected one section, got %d", len(doc.Children()))
	}

	if !errors.Is(converter.Parse([]byte("# A\n"), nil), ErrNilDocument) {
		t.Fatal("expected ErrNilDocument for nil root")
	}
}
