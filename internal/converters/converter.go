package converters

import (
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Func adapts a render function into an interfaces.BlockConverter bound to an
// explicit set of block types.
type Func struct {
	types  map[notion.BlockType]struct{}
	render func(block notion.Block, ctx *interfaces.ConvertContext) string
}

// NewFunc builds a converter for the given types backed by render.
func NewFunc(render func(notion.Block, *interfaces.ConvertContext) string, types ...notion.BlockType) *Func {
	supported := make(map[notion.BlockType]struct{}, len(types))
	for _, t := range types {
		supported[t] = struct{}{}
	}
	return &Func{types: supported, render: render}
}

// Supports reports whether the converter was registered for the type.
func (f *Func) Supports(blockType notion.BlockType) bool {
	_, ok := f.types[blockType]
	return ok
}

// Convert invokes the render function.
func (f *Func) Convert(block notion.Block, ctx *interfaces.ConvertContext) string {
	return f.render(block, ctx)
}

var _ interfaces.BlockConverter = (*Func)(nil)

// convertChildren recurses into the block's children one nesting level deeper.
func convertChildren(block notion.Block, ctx *interfaces.ConvertContext) string {
	if len(block.Children) == 0 || ctx.Pipeline == nil {
		return ""
	}
	child := ctx.Child()
	return ctx.Pipeline.ConvertAll(block.Children, &child)
}
