package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-doctree/pkg/interfaces"
)

const (
	rootModule       = "doctree"
	commonmarkModule = "doctree.commonmark"
)

const fieldSourceName = "source"

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ConverterLogger returns the logger namespace reserved for the CommonMark
// conversion pipeline.
func ConverterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commonmarkModule)
}

// WithSourceContext enriches the provided logger with the name of the
// document being converted. Empty values are ignored.
func WithSourceContext(logger interfaces.Logger, source string) interfaces.Logger {
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		return WithFields(logger, map[string]any{fieldSourceName: trimmed})
	}
	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
