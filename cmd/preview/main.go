// Command preview converts a block-tree JSON export into HTML or Markdown on
// stdout. It exists for eyeballing converter output during development; the
// engine itself never touches the filesystem.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	notionconvert "github.com/goliatone/go-notion-convert"
	"github.com/goliatone/go-notion-convert/internal/logging/gologger"
)

func main() {
	var (
		filePath = flag.String("file", "", "Path to the block-tree JSON export")
		format   = flag.String("format", "html", "Output format: html, markdown, or markdown-html (Markdown projection rendered through goldmark)")
		locale   = flag.String("locale", "en", "Locale for date and number formatting")
		maxDepth = flag.Int("max-depth", 16, "Maximum nesting depth before truncation")
		strict   = flag.Bool("strict", false, "Validate the block envelope before decoding")
		logLevel = flag.String("log-level", "warn", "Log level for conversion diagnostics")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read block export: %v", err)
	}

	provider, err := gologger.NewProvider(gologger.Config{Level: *logLevel, Format: "console"})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	cfg := notionconvert.DefaultConfig()
	cfg.Locale = *locale
	cfg.MaxDepth = *maxDepth
	cfg.StrictDecode = *strict
	cfg.Logging.Provider = provider

	engine, err := notionconvert.New(cfg)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	blocks, err := engine.DecodeBlocks(data)
	if err != nil {
		log.Fatalf("decode blocks: %v", err)
	}

	var (
		output string
		diags  notionconvert.Diagnostics
	)

	switch *format {
	case "html":
		output, diags = engine.ConvertBlocks(blocks)
	case "markdown":
		output, diags = engine.ConvertToMarkdown(blocks)
	case "markdown-html":
		doc, markdownDiags := engine.ConvertToMarkdown(blocks)
		diags = markdownDiags
		rendered, err := renderMarkdown(doc)
		if err != nil {
			log.Fatalf("render markdown: %v", err)
		}
		output = rendered
	default:
		log.Fatalf("unknown format %q", *format)
	}

	fmt.Fprintln(os.Stdout, output)

	if diags.UnsupportedCount > 0 || diags.TruncatedCount > 0 {
		fmt.Fprintf(os.Stderr, "diagnostics: %d unsupported, %d truncated\n",
			diags.UnsupportedCount, diags.TruncatedCount)
		for _, item := range diags.UnsupportedItems {
			fmt.Fprintf(os.Stderr, "  - %s (%s)\n", item.Type, item.ID)
		}
	}
}

// renderMarkdown runs the Markdown projection through goldmark with the GFM
// extensions the projection targets.
func renderMarkdown(doc string) (string, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := engine.Convert([]byte(doc), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
