package converters

import (
	"strings"

	"github.com/goliatone/go-notion-convert/internal/htmlutil"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

func convertDivider(notion.Block, *interfaces.ConvertContext) string {
	return "<hr/>"
}

// convertTable renders the fixed-width grid. Rows live in the children as
// table_row blocks; has_column_header promotes the first row into a thead,
// has_row_header promotes each row's first cell to th.
func convertTable(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := block.Table
	if payload == nil {
		payload = &notion.TablePayload{}
	}

	rows := make([]notion.Block, 0, len(block.Children))
	for _, child := range block.Children {
		if child.Type == notion.BlockTableRow && child.TableRow != nil {
			rows = append(rows, child)
		}
	}
	if len(rows) == 0 {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}

	var b strings.Builder
	b.WriteString(`<table class="notion-table">`)
	start := 0
	if payload.HasColumnHeader {
		b.WriteString("<thead>")
		b.WriteString(renderTableRow(rows[0], payload, true))
		b.WriteString("</thead>")
		start = 1
	}
	b.WriteString("<tbody>")
	for _, row := range rows[start:] {
		b.WriteString(renderTableRow(row, payload, false))
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderTableRow(row notion.Block, table *notion.TablePayload, header bool) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for i, cell := range row.TableRow.Cells {
		tag := "td"
		if header || (table.HasRowHeader && i == 0) {
			tag = "th"
		}
		b.WriteString("<" + tag + ">")
		b.WriteString(richtext.RenderHTML(cell))
		b.WriteString("</" + tag + ">")
	}
	b.WriteString("</tr>")
	return b.String()
}

// convertTableRow handles a row that arrives outside a table block; the table
// converter walks its children directly and never dispatches here.
func convertTableRow(block notion.Block, _ *interfaces.ConvertContext) string {
	if block.TableRow == nil {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	return "<table class=\"notion-table\"><tbody>" +
		renderTableRow(block, &notion.TablePayload{}, false) +
		"</tbody></table>"
}

func convertColumnList(block notion.Block, ctx *interfaces.ConvertContext) string {
	inner := convertChildren(block, ctx)
	if inner == "" {
		inner = richtext.EmptyPlaceholder
	}
	return `<div class="notion-columns">` + inner + "</div>"
}

func convertColumn(block notion.Block, ctx *interfaces.ConvertContext) string {
	inner := convertChildren(block, ctx)
	if inner == "" {
		inner = richtext.EmptyPlaceholder
	}
	return `<div class="notion-column">` + inner + "</div>"
}

// convertPassthrough covers synced_block and template wrappers: their own
// chrome has no markup equivalent, the children are the content.
func convertPassthrough(block notion.Block, ctx *interfaces.ConvertContext) string {
	inner := convertChildren(block, ctx)
	if inner == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	return inner
}

func convertChildPage(block notion.Block, _ *interfaces.ConvertContext) string {
	title := ""
	if block.Child != nil {
		title = block.Child.Title
	}
	if title == "" {
		title = "Untitled"
	}

	class := "notion-child-page"
	if block.Type == notion.BlockChildDatabase {
		class = "notion-child-database"
	}

	var b strings.Builder
	b.WriteString(`<div class="` + class + `"`)
	b.WriteString(htmlutil.Attr("data-block-id", BlockID(block)))
	b.WriteString("><span>")
	b.WriteString(htmlutil.EscapeText(title))
	b.WriteString("</span></div>")
	return b.String()
}

func convertBreadcrumb(notion.Block, *interfaces.ConvertContext) string {
	return `<nav class="notion-breadcrumb"></nav>`
}

func convertTableOfContents(notion.Block, *interfaces.ConvertContext) string {
	return `<nav class="notion-toc"></nav>`
}
