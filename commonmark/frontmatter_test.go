package commonmark

import (
	"strings"
	"testing"
)

const frontMatterFixture = `---
title: Sample Document
tags:
  - docs
  - intro
draft: true
custom_flag: true
---

# Sample Document

Body content.
`

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(frontMatterFixture))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Document" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "sample-document" {
		t.Fatalf("expected slug derived from title, got %q", fm.Slug)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "docs" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if !fm.Draft {
		t.Fatal("expected draft flag to be set")
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["title"] != "Sample Document" {
		t.Fatalf("FrontMatter Raw title missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Sample Document") {
		t.Fatalf("markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	source := "# Plain\n\nNo metadata here.\n"

	fm, body, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || fm.Slug != "" {
		t.Fatalf("expected empty metadata, got %+v", fm)
	}
	if string(body) != source {
		t.Fatalf("expected body passthrough, got %q", string(body))
	}
}

func TestParseFrontMatterKeepsExplicitSlug(t *testing.T) {
	source := "---\ntitle: Some Title\nslug: custom-slug\n---\nbody\n"

	fm, _, err := ParseFrontMatter([]byte(source))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Slug != "custom-slug" {
		t.Fatalf("expected explicit slug to win, got %q", fm.Slug)
	}
}
