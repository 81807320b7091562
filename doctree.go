// Package doctree converts CommonMark markup into a generic hierarchical
// document tree, an intermediate representation for downstream document
// pipelines (HTML, LaTeX, and other writers live elsewhere).
package doctree

import (
	"context"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-doctree/commonmark"
	"github.com/goliatone/go-doctree/internal/logging"
	"github.com/goliatone/go-doctree/internal/logging/gologger"
	"github.com/goliatone/go-doctree/nodes"
	"github.com/goliatone/go-doctree/pkg/interfaces"
)

// Converter exports the conversion contract for consumers of the doctree
// package.
type Converter = interfaces.Converter

// FrontMatter exports the metadata envelope returned alongside converted
// documents.
type FrontMatter = interfaces.FrontMatter

// Module wires the conversion pipeline with logging per configuration.
type Module struct {
	cfg       Config
	converter *commonmark.Parser
	logger    interfaces.Logger
}

// New validates the configuration and assembles a conversion module.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapConfigError(err)
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, wrapConfigError(err)
	}

	logger := logging.ModuleLogger(provider, "")
	converter := commonmark.NewParser(commonmark.Options{
		Extensions: cfg.Extensions,
		Logger:     logging.ConverterLogger(provider),
	})

	return &Module{
		cfg:       cfg,
		converter: converter,
		logger:    logger,
	}, nil
}

// Converter returns the underlying CommonMark converter for callers that
// manage their own document roots.
func (m *Module) Converter() Converter {
	return m.converter
}

// Convert parses source into a fresh document tree. When front matter is
// enabled, metadata is stripped ahead of conversion and returned alongside
// the tree; sources without a front matter block yield nil metadata fields.
func (m *Module) Convert(ctx context.Context, source []byte) (*nodes.Document, *FrontMatter, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	body := source
	var meta *FrontMatter

	if m.cfg.FrontMatter {
		parsed, rest, err := commonmark.ParseFrontMatter(source)
		if err != nil {
			return nil, nil, wrapFrontMatterError(err)
		}
		meta = &parsed
		body = rest
	}

	m.logger.Debug("converting document", "bytes", len(body))

	doc := nodes.NewDocument()
	if err := m.converter.Parse(body, doc); err != nil {
		return nil, nil, wrapConvertError(err)
	}

	return doc, meta, nil
}

const (
	configInvalidCode      = "DOCTREE_CONFIG_INVALID"
	frontMatterInvalidCode = "DOCTREE_FRONTMATTER_INVALID"
	convertFailedCode      = "DOCTREE_CONVERT_FAILED"
)

func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "doctree configuration invalid").
		WithTextCode(configInvalidCode)
}

func wrapFrontMatterError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter invalid").
		WithTextCode(frontMatterInvalidCode)
}

func wrapConvertError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "markup conversion failed").
		WithTextCode(convertFailedCode)
}
