package nodes

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// FullyNormalizeName lowercases a name and collapses every run of whitespace
// to a single space. This is the canonical form used for section names and
// target lookup.
func FullyNormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// MakeID converts a normalized name into a URL-safe identifier. Names that
// normalize to nothing fall back to a generic id so sections always remain
// addressable.
func MakeID(name string) string {
	id, err := slug.Normalize(name)
	if err != nil || id == "" {
		return "section"
	}
	return id
}
