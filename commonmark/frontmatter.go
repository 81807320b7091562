package commonmark

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-doctree/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and the markup body from the provided
// source bytes. Sources without a front matter block pass through untouched.
// When the metadata names no slug, one is derived from the title so every
// document ends up addressable.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var env frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &env)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if env.Slug == "" && env.Title != "" {
		if derived, err := slug.Normalize(env.Title); err == nil {
			env.Slug = derived
		}
	}

	return envelopeToFrontMatter(env), body, nil
}

type frontMatterEnvelope struct {
	Title  string         `yaml:"title"`
	Slug   string         `yaml:"slug"`
	Tags   []string       `yaml:"tags"`
	Draft  bool           `yaml:"draft"`
	Custom map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+4)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:  env.Title,
		Slug:   env.Slug,
		Tags:   append([]string(nil), env.Tags...),
		Draft:  env.Draft,
		Custom: cloneMap(env.Custom),
		Raw:    raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
