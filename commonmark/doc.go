// Package commonmark converts CommonMark source into a generic document
// tree. Tokenization is delegated to goldmark; this package walks the
// resulting AST, reconstructs heading nesting into sections, and emits
// nodes from the nodes package.
package commonmark
