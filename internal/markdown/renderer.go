// Package markdown renders a block tree into GitHub-flavored Markdown. It is
// the secondary projection next to the HTML one: lossier (underline and color
// have no portable form) but convenient for preview tooling and plain-text
// pipelines. List grouping and depth guarding follow the same rules as the
// HTML pipeline.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-notion-convert/internal/converters"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Render converts the block tree into a Markdown document. Diagnostics on the
// context collect unsupported and truncated blocks exactly like the HTML
// pipeline.
func Render(blocks []notion.Block, ctx *interfaces.ConvertContext) string {
	doc := renderBlocks(blocks, ctx, "")
	return strings.TrimRight(doc, "\n") + "\n"
}

func renderBlocks(blocks []notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	var b strings.Builder
	for i := 0; i < len(blocks); {
		switch blocks[i].Type {
		case notion.BlockBulletedListItem, notion.BlockNumberedListItem:
			j := i
			for j < len(blocks) && blocks[j].Type == blocks[i].Type {
				j++
			}
			b.WriteString(renderList(blocks[i:j], ctx, indent))
			i = j
		default:
			b.WriteString(renderBlock(blocks[i], ctx, indent))
			i++
		}
	}
	return b.String()
}

func renderList(items []notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	var b strings.Builder
	for n, item := range items {
		marker := "- "
		if item.Type == notion.BlockNumberedListItem {
			marker = strconv.Itoa(n+1) + ". "
		}
		runs := []notion.RichText{}
		if item.Text != nil {
			runs = item.Text.RichText
		}
		b.WriteString(indent + marker + richtext.RenderMarkdown(runs) + "\n")
		if len(item.Children) > 0 {
			child := ctx.Child()
			if child.DepthExceeded() {
				ctx.Diagnostics.RecordTruncated()
				b.WriteString(indent + "  > …\n")
				continue
			}
			b.WriteString(renderBlocks(item.Children, &child, indent+"  "))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderBlock(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	if ctx.DepthExceeded() {
		ctx.Diagnostics.RecordTruncated()
		return indent + "> Content truncated at maximum nesting depth\n\n"
	}

	switch block.Type {
	case notion.BlockParagraph:
		return indent + inline(block) + "\n\n" + renderChildren(block, ctx, indent)
	case notion.BlockHeading1:
		return indent + "# " + inline(block) + "\n\n" + renderChildren(block, ctx, indent)
	case notion.BlockHeading2:
		return indent + "## " + inline(block) + "\n\n" + renderChildren(block, ctx, indent)
	case notion.BlockHeading3:
		return indent + "### " + inline(block) + "\n\n" + renderChildren(block, ctx, indent)
	case notion.BlockQuote:
		return quoted(inline(block), indent) + renderChildren(block, ctx, indent+"> ")
	case notion.BlockCallout:
		return renderCallout(block, ctx, indent)
	case notion.BlockToDo:
		return renderToDo(block, ctx, indent)
	case notion.BlockToggle:
		return renderToggle(block, ctx, indent)
	case notion.BlockCode:
		return renderCode(block, indent)
	case notion.BlockDivider:
		return indent + "---\n\n"
	case notion.BlockTable:
		return renderTable(block, indent)
	case notion.BlockEquation:
		expression := ""
		if block.Equation != nil {
			expression = block.Equation.Expression
		}
		return indent + "$$" + expression + "$$\n\n"
	case notion.BlockImage:
		return renderImage(block, ctx, indent)
	case notion.BlockFile, notion.BlockPDF, notion.BlockVideo, notion.BlockAudio,
		notion.BlockBookmark, notion.BlockEmbed, notion.BlockLinkPreview:
		return renderLinkCard(block, ctx, indent)
	case notion.BlockChildPage, notion.BlockChildDatabase:
		title := "Untitled"
		if block.Child != nil && block.Child.Title != "" {
			title = block.Child.Title
		}
		return indent + "**" + title + "**\n\n"
	case notion.BlockColumnList, notion.BlockColumn, notion.BlockSyncedBlock, notion.BlockTemplate:
		return renderChildren(block, ctx, indent)
	case notion.BlockBreadcrumb, notion.BlockTableOfContents:
		return ""
	default:
		id := converters.BlockID(block)
		ctx.Diagnostics.RecordUnsupported(block.Type, id)
		return indent + fmt.Sprintf("**Unsupported block type %q (%s)**\n\n", string(block.Type), id)
	}
}

func inline(block notion.Block) string {
	if block.Text == nil {
		return ""
	}
	return richtext.RenderMarkdown(block.Text.RichText)
}

func renderChildren(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	if len(block.Children) == 0 {
		return ""
	}
	child := ctx.Child()
	return renderBlocks(block.Children, &child, indent)
}

func quoted(text, indent string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent + "> " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func renderCallout(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	payload := block.Callout
	if payload == nil {
		payload = &notion.CalloutPayload{}
	}
	text := richtext.RenderMarkdown(payload.RichText)
	if payload.Icon != "" {
		text = payload.Icon + " " + text
	}
	return quoted(text, indent) + renderChildren(block, ctx, indent+"> ")
}

func renderToDo(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	payload := block.Todo
	if payload == nil {
		payload = &notion.TodoPayload{}
	}
	marker := "- [ ] "
	if payload.Checked {
		marker = "- [x] "
	}
	return indent + marker + richtext.RenderMarkdown(payload.RichText) + "\n" +
		renderChildren(block, ctx, indent+"  ")
}

func renderToggle(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	var b strings.Builder
	b.WriteString(indent + "<details><summary>" + inline(block) + "</summary>\n\n")
	b.WriteString(renderChildren(block, ctx, indent))
	b.WriteString(indent + "</details>\n\n")
	return b.String()
}

func renderCode(block notion.Block, indent string) string {
	payload := block.Code
	if payload == nil {
		payload = &notion.CodePayload{}
	}
	var b strings.Builder
	b.WriteString(indent + "```" + payload.Language + "\n")
	b.WriteString(richtext.PlainText(payload.RichText))
	b.WriteString("\n" + indent + "```\n\n")
	return b.String()
}

// renderTable emits a GFM pipe table. GFM requires a header row, so the first
// row serves as header whether or not the source marked one.
func renderTable(block notion.Block, indent string) string {
	rows := make([][]string, 0, len(block.Children))
	width := 0
	for _, child := range block.Children {
		if child.Type != notion.BlockTableRow || child.TableRow == nil {
			continue
		}
		cells := make([]string, 0, len(child.TableRow.Cells))
		for _, cell := range child.TableRow.Cells {
			cells = append(cells, escapePipes(richtext.RenderMarkdown(cell)))
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 || width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString(indent + "|")
		for i := 0; i < width; i++ {
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			b.WriteString(" " + value + " |")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString(indent + "|")
	for i := 0; i < width; i++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	b.WriteString("\n")
	return b.String()
}

func escapePipes(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

func resolvedRef(block notion.Block, ctx *interfaces.ConvertContext) (notion.ResourceRef, []notion.RichText) {
	payload := notion.MediaPayload{}
	if block.Media != nil {
		payload = *block.Media
	}
	if ctx.ResolveResource != nil {
		payload.Ref = ctx.ResolveResource(payload.Ref)
	}
	return payload.Ref, payload.Caption
}

func renderImage(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	ref, caption := resolvedRef(block, ctx)
	if ref.URL == "" {
		id := converters.BlockID(block)
		ctx.Diagnostics.RecordUnsupported(block.Type, id)
		return indent + fmt.Sprintf("**Unsupported block type %q (%s)**\n\n", string(block.Type), id)
	}
	return indent + "![" + richtext.PlainText(caption) + "](" + ref.URL + ")\n\n"
}

func renderLinkCard(block notion.Block, ctx *interfaces.ConvertContext, indent string) string {
	ref, caption := resolvedRef(block, ctx)
	if ref.URL == "" {
		id := converters.BlockID(block)
		ctx.Diagnostics.RecordUnsupported(block.Type, id)
		return indent + fmt.Sprintf("**Unsupported block type %q (%s)**\n\n", string(block.Type), id)
	}
	label := richtext.PlainText(caption)
	if label == "" {
		label = ref.Name
	}
	if label == "" {
		label = ref.URL
	}
	return indent + "[" + label + "](" + ref.URL + ")\n\n"
}
