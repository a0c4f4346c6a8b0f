package converters

import (
	"strings"

	"github.com/goliatone/go-notion-convert/internal/htmlutil"
	"github.com/goliatone/go-notion-convert/internal/identity"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// fallbackConverter emits an identifiable placeholder for any block the
// registry cannot resolve. The placeholder names the block's type and id so
// unsupported content degrades visibly instead of disappearing.
type fallbackConverter struct{}

func (fallbackConverter) Supports(notion.BlockType) bool { return true }

func (f fallbackConverter) Convert(block notion.Block, ctx *interfaces.ConvertContext) string {
	id := BlockID(block)
	if ctx != nil {
		ctx.Diagnostics.RecordUnsupported(block.Type, id)
		if ctx.Metrics != nil {
			ctx.Metrics.IncrementUnsupported(string(block.Type))
		}
		if ctx.Logger != nil {
			ctx.Logger.Debug("unsupported block type", "block_type", string(block.Type), "block_id", id)
		}
	}
	return UnsupportedPlaceholder(block.Type, id)
}

// UnsupportedPlaceholder renders the visible stand-in for an unconvertible
// block. Both the type and the id survive escaping into the output.
func UnsupportedPlaceholder(blockType notion.BlockType, id string) string {
	var b strings.Builder
	b.WriteString(`<div class="notion-unsupported"`)
	b.WriteString(htmlutil.Attr("data-block-type", string(blockType)))
	b.WriteString(htmlutil.Attr("data-block-id", id))
	b.WriteString(">Unsupported block type &quot;")
	b.WriteString(htmlutil.EscapeText(string(blockType)))
	b.WriteString("&quot; (")
	b.WriteString(htmlutil.EscapeText(id))
	b.WriteString(")</div>")
	return b.String()
}

// TruncatedPlaceholder renders the stand-in emitted when the depth guard cuts
// off a subtree.
func TruncatedPlaceholder(block notion.Block) string {
	var b strings.Builder
	b.WriteString(`<div class="notion-truncated"`)
	b.WriteString(htmlutil.Attr("data-block-id", BlockID(block)))
	b.WriteString(">Content truncated at maximum nesting depth</div>")
	return b.String()
}

// BlockID returns the block's id, deriving a deterministic placeholder when
// the upstream payload omitted one.
func BlockID(block notion.Block) string {
	if block.ID != "" {
		return block.ID
	}
	return identity.BlockUUID(string(block.Type), blockText(block)).String()
}

func blockText(block notion.Block) string {
	switch {
	case block.Text != nil:
		return richtext.PlainText(block.Text.RichText)
	case block.Todo != nil:
		return richtext.PlainText(block.Todo.RichText)
	case block.Callout != nil:
		return richtext.PlainText(block.Callout.RichText)
	case block.Code != nil:
		return richtext.PlainText(block.Code.RichText)
	case block.Child != nil:
		return block.Child.Title
	case block.Media != nil:
		return block.Media.Ref.URL
	case block.Equation != nil:
		return block.Equation.Expression
	default:
		return ""
	}
}
