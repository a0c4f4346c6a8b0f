package converters

import (
	"strings"
	"time"

	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Pipeline walks sibling block sequences, groups consecutive list items into
// a single wrapper, enforces the depth guard, and dispatches every other
// block through the registry. It holds no per-run state; everything mutable
// travels on the context.
type Pipeline struct {
	registry interfaces.ConverterRegistry
}

// NewPipeline constructs a pipeline over the supplied registry.
func NewPipeline(registry interfaces.ConverterRegistry) *Pipeline {
	return &Pipeline{registry: registry}
}

type listKind struct {
	wrapper string
}

func listKindFor(blockType notion.BlockType) (listKind, bool) {
	switch blockType {
	case notion.BlockBulletedListItem:
		return listKind{wrapper: "ul"}, true
	case notion.BlockNumberedListItem:
		return listKind{wrapper: "ol"}, true
	default:
		return listKind{}, false
	}
}

// ConvertAll converts an ordered sibling sequence. Consecutive blocks of the
// same list kind merge into exactly one wrapper with one item per source
// block; a different kind or a non-list block closes the current list. A
// single item still produces a one-item wrapper, never a bare item.
func (p *Pipeline) ConvertAll(blocks []notion.Block, ctx *interfaces.ConvertContext) string {
	var b strings.Builder
	for i := 0; i < len(blocks); {
		kind, ok := listKindFor(blocks[i].Type)
		if !ok {
			b.WriteString(p.convertOne(blocks[i], ctx))
			i++
			continue
		}

		j := i
		for j < len(blocks) && blocks[j].Type == blocks[i].Type {
			j++
		}
		b.WriteString("<" + kind.wrapper + ">")
		for _, item := range blocks[i:j] {
			b.WriteString(p.convertOne(item, ctx))
		}
		b.WriteString("</" + kind.wrapper + ">")
		i = j
	}
	return b.String()
}

// convertOne dispatches a single block, recovering from converter panics so a
// malformed block degrades to the placeholder instead of aborting the run.
func (p *Pipeline) convertOne(block notion.Block, ctx *interfaces.ConvertContext) (out string) {
	if ctx.DepthExceeded() {
		ctx.Diagnostics.RecordTruncated()
		if ctx.Metrics != nil {
			ctx.Metrics.IncrementTruncated(string(block.Type))
		}
		if ctx.Logger != nil {
			ctx.Logger.Warn("block truncated at depth guard",
				"block_type", string(block.Type), "depth", ctx.Depth)
		}
		return TruncatedPlaceholder(block)
	}

	started := time.Now()
	defer func() {
		if ctx.Metrics != nil {
			ctx.Metrics.ObserveConvertDuration(string(block.Type), time.Since(started))
		}
		if recovered := recover(); recovered != nil {
			if ctx.Logger != nil {
				ctx.Logger.Error("converter panicked",
					"block_type", string(block.Type), "block_id", BlockID(block), "panic", recovered)
			}
			out = UnsupportedPlaceholder(block.Type, BlockID(block))
			ctx.Diagnostics.RecordUnsupported(block.Type, BlockID(block))
		}
	}()

	out = p.registry.Resolve(block.Type).Convert(block, ctx)
	if strings.TrimSpace(out) == "" {
		// converters must never produce silent disappearance
		if ctx.Logger != nil {
			ctx.Logger.Warn("converter returned empty output",
				"block_type", string(block.Type), "block_id", BlockID(block))
		}
		out = UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	return out
}

var _ interfaces.BlockPipeline = (*Pipeline)(nil)
