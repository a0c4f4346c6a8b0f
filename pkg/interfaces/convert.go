package interfaces

import (
	"time"

	"github.com/goliatone/go-notion-convert/notion"
)

// BlockConverter renders one block variant into markup. Implementations must
// never panic; internal failures degrade to a visible placeholder so a single
// malformed block cannot abort conversion of a whole document.
type BlockConverter interface {
	// Supports reports whether the converter can handle the block type.
	Supports(blockType notion.BlockType) bool

	// Convert renders the block using the supplied context. The returned
	// markup must be non-empty and must not leave dangling unclosed tags.
	Convert(block notion.Block, ctx *ConvertContext) string
}

// ConverterRegistry describes the lifecycle contract for registering and
// resolving block converters. Implementations must be safe for concurrent
// reads once Freeze has been called.
type ConverterRegistry interface {
	// Register stores a converter for a block type. Higher priority wins when
	// a type is registered more than once. Registering after Freeze fails.
	Register(blockType notion.BlockType, converter BlockConverter, priority int) error

	// Resolve returns the converter for the type, falling back to the
	// visible-placeholder converter for unknown types. It never returns nil.
	Resolve(blockType notion.BlockType) BlockConverter

	// Types exposes the registered block types in sorted order.
	Types() []notion.BlockType

	// Freeze makes the registry immutable. Safe to call more than once.
	Freeze()
}

// BlockPipeline converts a sequence of sibling blocks, applying list grouping
// and depth guarding. Converters recurse into children through the pipeline
// carried on the context rather than resolving converters directly.
type BlockPipeline interface {
	ConvertAll(blocks []notion.Block, ctx *ConvertContext) string
}

// ResourceResolver rewrites an already-resolved media reference, e.g. to swap
// an upstream-hosted URL for a mirrored copy. It must not perform network
// calls on behalf of the engine.
type ResourceResolver func(ref notion.ResourceRef) notion.ResourceRef

// RelationResolver maps a referenced record id to its title. Returning
// ok=false keeps the count-only representation.
type RelationResolver func(id string) (title string, ok bool)

// ConvertContext is the ambient state threaded through a conversion run. It
// is copied per recursion level; Diagnostics is the one shared pointer and
// collects what could not be fully converted.
type ConvertContext struct {
	Depth    int
	MaxDepth int
	Locale   string

	ResolveResource ResourceResolver
	ResolveRelation RelationResolver

	Pipeline    BlockPipeline
	Logger      Logger
	Metrics     ConversionMetrics
	Diagnostics *Diagnostics
}

// Child returns a copy of the context one nesting level deeper.
func (c ConvertContext) Child() ConvertContext {
	c.Depth++
	return c
}

// DepthExceeded reports whether recursion is past the configured guard.
func (c ConvertContext) DepthExceeded() bool {
	return c.MaxDepth > 0 && c.Depth >= c.MaxDepth
}

// Diagnostics aggregates counters and metadata describing what could not be
// fully converted during a run.
type Diagnostics struct {
	UnsupportedCount int
	UnsupportedItems []UnsupportedItem
	TruncatedCount   int
}

// UnsupportedItem identifies one block that fell through to the placeholder
// converter.
type UnsupportedItem struct {
	Type notion.BlockType
	ID   string
}

// RecordUnsupported notes one block that could not be converted.
func (d *Diagnostics) RecordUnsupported(blockType notion.BlockType, id string) {
	if d == nil {
		return
	}
	d.UnsupportedCount++
	d.UnsupportedItems = append(d.UnsupportedItems, UnsupportedItem{Type: blockType, ID: id})
}

// RecordTruncated notes one subtree cut off by the depth guard.
func (d *Diagnostics) RecordTruncated() {
	if d == nil {
		return
	}
	d.TruncatedCount++
}

// ConversionMetrics receives telemetry about conversion outcomes. A no-op
// implementation is used when the host does not wire one.
type ConversionMetrics interface {
	ObserveConvertDuration(blockType string, d time.Duration)
	IncrementUnsupported(blockType string)
	IncrementTruncated(blockType string)
}
