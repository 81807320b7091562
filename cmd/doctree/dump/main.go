package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	doctree "github.com/goliatone/go-doctree"
	"github.com/goliatone/go-doctree/nodes"
)

func main() {
	var (
		filePath    = flag.String("file", "", "Markdown file to convert")
		extensions  = flag.String("extensions", "", "Comma separated list of goldmark extensions to enable")
		frontMatter = flag.Bool("frontmatter", true, "Strip and report front matter before conversion")
		logLevel    = flag.String("log-level", "warn", "Diagnostic log level (trace|debug|info|warn|error|fatal)")
		logFormat   = flag.String("log-format", "console", "Diagnostic log format (json|console|pretty)")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	source, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read %s: %v", *filePath, err)
	}

	cfg := doctree.DefaultConfig()
	cfg.Extensions = splitExtensions(*extensions)
	cfg.FrontMatter = *frontMatter
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := doctree.New(cfg)
	if err != nil {
		log.Fatalf("configure doctree: %v", err)
	}

	doc, meta, err := module.Convert(context.Background(), source)
	if err != nil {
		log.Fatalf("convert %s: %v", *filePath, err)
	}

	if meta != nil && len(meta.Raw) > 0 {
		if encoded, err := json.MarshalIndent(meta.Raw, "", "  "); err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", encoded)
		}
	}

	fmt.Fprint(os.Stdout, nodes.PFormat(doc))
}

func splitExtensions(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
