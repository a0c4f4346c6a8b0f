// Package notionconvert converts block trees and property values authored in
// an external structured-document service into CMS-ready HTML (plus a
// Markdown projection) and grid-ready formatted cells with column
// descriptors. The engine is pure and stateless: no I/O happens inside it,
// and a constructed Engine is safe for concurrent use because its converter
// registry is frozen at construction.
package notionconvert

import (
	"github.com/goliatone/go-notion-convert/internal/converters"
	"github.com/goliatone/go-notion-convert/internal/logging"
	"github.com/goliatone/go-notion-convert/internal/markdown"
	"github.com/goliatone/go-notion-convert/internal/properties"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Re-exported contract types so most embeddings only import this package and
// notion.
type (
	Diagnostics     = interfaces.Diagnostics
	UnsupportedItem = interfaces.UnsupportedItem
	FormattedValue  = interfaces.FormattedValue
	Badge           = interfaces.Badge
	Link            = interfaces.Link
	FileRef         = interfaces.FileRef
	Person          = interfaces.Person
	ColumnConfig    = interfaces.ColumnConfig
	BlockConverter  = interfaces.BlockConverter
	ConvertContext  = interfaces.ConvertContext
)

// Engine is the long-lived conversion facade. Build one per configuration and
// share it freely across goroutines.
type Engine struct {
	config    Config
	registry  *converters.Registry
	pipeline  *converters.Pipeline
	formatter *properties.Formatter
	metrics   interfaces.ConversionMetrics

	blocksLogger     interfaces.Logger
	propertiesLogger interfaces.Logger

	resolveResource interfaces.ResourceResolver
	resolveRelation interfaces.RelationResolver

	pending []pendingConverter
}

type pendingConverter struct {
	blockType notion.BlockType
	converter interfaces.BlockConverter
	priority  int
}

// Option customises engine construction.
type Option func(*Engine)

// WithConverter registers a custom block converter before the registry
// freezes. Priority >= 0 overrides any built-in.
func WithConverter(blockType notion.BlockType, converter interfaces.BlockConverter, priority int) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, pendingConverter{
			blockType: blockType,
			converter: converter,
			priority:  priority,
		})
	}
}

// WithResourceResolver supplies the caller's media reference rewriter.
func WithResourceResolver(resolver interfaces.ResourceResolver) Option {
	return func(e *Engine) {
		e.resolveResource = resolver
	}
}

// WithRelationResolver supplies the optional relation id-to-title lookup.
// Without it, relation properties format count-only.
func WithRelationResolver(resolver interfaces.RelationResolver) Option {
	return func(e *Engine) {
		e.resolveRelation = resolver
	}
}

// WithMetrics wires the telemetry recorder used for conversion outcomes.
func WithMetrics(metrics interfaces.ConversionMetrics) Option {
	return func(e *Engine) {
		if metrics != nil {
			e.metrics = metrics
		}
	}
}

// New constructs an engine: built-in converters plus any custom registrations
// are applied, then the registry freezes and stays immutable for the engine's
// lifetime.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		config:           cfg,
		registry:         converters.NewRegistry(),
		metrics:          converters.NoOpMetrics(),
		blocksLogger:     logging.BlocksLogger(cfg.Logging.Provider),
		propertiesLogger: logging.PropertiesLogger(cfg.Logging.Provider),
	}

	if err := converters.RegisterBuiltIn(engine.registry); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(engine)
	}
	for _, pending := range engine.pending {
		if err := engine.registry.Register(pending.blockType, pending.converter, pending.priority); err != nil {
			return nil, err
		}
	}
	engine.pending = nil
	engine.registry.Freeze()

	engine.pipeline = converters.NewPipeline(engine.registry)
	engine.formatter = properties.NewFormatter(
		properties.WithLocale(cfg.Locale),
		properties.WithRelationResolver(engine.resolveRelation),
		properties.WithLogger(engine.propertiesLogger),
	)
	return engine, nil
}

// newContext builds the per-run conversion context with a fresh diagnostics
// collector.
func (e *Engine) newContext() interfaces.ConvertContext {
	return interfaces.ConvertContext{
		MaxDepth:        e.config.MaxDepth,
		Locale:          e.config.Locale,
		ResolveResource: e.resolveResource,
		ResolveRelation: e.resolveRelation,
		Pipeline:        e.pipeline,
		Logger:          e.blocksLogger,
		Metrics:         e.metrics,
		Diagnostics:     &interfaces.Diagnostics{},
	}
}

// ConvertBlocks renders the block tree into embeddable HTML. The returned
// diagnostics report what degraded to placeholders; conversion itself never
// fails.
func (e *Engine) ConvertBlocks(blocks []notion.Block) (string, Diagnostics) {
	ctx := e.newContext()
	markup := e.pipeline.ConvertAll(blocks, &ctx)
	return markup, *ctx.Diagnostics
}

// ConvertToMarkdown renders the same tree into the GitHub-flavored Markdown
// projection.
func (e *Engine) ConvertToMarkdown(blocks []notion.Block) (string, Diagnostics) {
	ctx := e.newContext()
	doc := markdown.Render(blocks, &ctx)
	return doc, *ctx.Diagnostics
}

// FormatProperty maps one typed property value onto its grid cell rendering.
// Null or absent payloads yield the empty sentinel, unknown types a
// best-effort stringification; it never panics.
func (e *Engine) FormatProperty(value notion.PropertyValue) FormattedValue {
	return e.formatter.Format(value)
}

// FormatInferred formats a schemaless raw value, inferring its type from the
// value shape first. The result carries the Inferred flag.
func (e *Engine) FormatInferred(value any) FormattedValue {
	return e.formatter.FormatInferred(value)
}

// InferType guesses a property type from a raw value's shape; rules apply in
// fixed priority order, first match wins.
func (e *Engine) InferType(value any) notion.PropertyType {
	return e.formatter.InferType(value)
}

// ColumnConfigFor derives the grid column descriptor for a property type.
// Deterministic: identical arguments always return structurally equal
// results.
func (e *Engine) ColumnConfigFor(propType notion.PropertyType, field, title string) ColumnConfig {
	return properties.ColumnConfigFor(propType, field, title)
}

// DecodeBlocks parses upstream-shaped JSON into the typed block tree,
// honoring the engine's StrictDecode setting.
func (e *Engine) DecodeBlocks(data []byte) ([]notion.Block, error) {
	if e.config.StrictDecode {
		return notion.DecodeBlocksStrict(data)
	}
	return notion.DecodeBlocks(data)
}

// PlainText strips all markup from a run sequence; intended for indexing and
// search pipelines.
func PlainText(runs []notion.RichText) string {
	return richtext.PlainText(runs)
}

// RenderRichText renders a run sequence into injection-safe inline HTML with
// the engine's fixed annotation nesting order.
func RenderRichText(runs []notion.RichText) string {
	return richtext.RenderHTML(runs)
}
