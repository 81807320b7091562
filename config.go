package doctree

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-doctree/commonmark"
)

// Config controls how a Module tokenizes and converts markup.
type Config struct {
	// Extensions names the goldmark extensions enabled during tokenization.
	Extensions []string
	// FrontMatter enables metadata extraction ahead of conversion.
	FrontMatter bool
	// Logging configures the go-logger provider backing diagnostics.
	Logging LoggingConfig
}

// LoggingConfig mirrors the options of the go-logger adapter.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the configuration used when callers do not override
// anything: no extensions, front matter enabled, JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		FrontMatter: true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate ensures every named extension is supported and the logging
// options map onto the provider.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Extensions, validation.Each(validation.By(knownExtension))),
		validation.Field(&c.Logging),
	)
}

// Validate implements validation.Validatable for the nested logging options.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
	)
}

func knownExtension(value any) error {
	name, _ := value.(string)
	if strings.TrimSpace(name) == "" {
		return validation.NewError("doctree.config.extension_empty", "extension name is empty")
	}
	if !commonmark.KnownExtension(name) {
		return validation.NewError("doctree.config.extension_unknown", "unknown extension "+name)
	}
	return nil
}
