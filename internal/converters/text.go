package converters

import (
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-notion-convert/internal/htmlutil"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

func textRuns(block notion.Block) []notion.RichText {
	if block.Text == nil {
		return nil
	}
	return block.Text.RichText
}

func convertParagraph(block notion.Block, ctx *interfaces.ConvertContext) string {
	var b strings.Builder
	b.WriteString("<p>")
	b.WriteString(richtext.RenderHTML(textRuns(block)))
	b.WriteString("</p>")
	if children := convertChildren(block, ctx); children != "" {
		b.WriteString(`<div class="notion-indent">`)
		b.WriteString(children)
		b.WriteString("</div>")
	}
	return b.String()
}

var headingLevels = map[notion.BlockType]string{
	notion.BlockHeading1: "h1",
	notion.BlockHeading2: "h2",
	notion.BlockHeading3: "h3",
}

func convertHeading(block notion.Block, ctx *interfaces.ConvertContext) string {
	tag, ok := headingLevels[block.Type]
	if !ok {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}

	runs := textRuns(block)
	anchor := headingAnchor(richtext.PlainText(runs))

	var b strings.Builder
	b.WriteString("<" + tag)
	b.WriteString(htmlutil.Attr("id", anchor))
	b.WriteString(">")
	b.WriteString(richtext.RenderHTML(runs))
	b.WriteString("</" + tag + ">")
	b.WriteString(convertChildren(block, ctx))
	return b.String()
}

// headingAnchor derives a stable fragment id from the heading's plain text so
// table-of-contents collaborators can deep link. Unslugifiable text simply
// drops the anchor.
func headingAnchor(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil {
		return ""
	}
	return normalized
}

func convertQuote(block notion.Block, ctx *interfaces.ConvertContext) string {
	var b strings.Builder
	b.WriteString("<blockquote>")
	b.WriteString(richtext.RenderHTML(textRuns(block)))
	b.WriteString(convertChildren(block, ctx))
	b.WriteString("</blockquote>")
	return b.String()
}

// convertListItem renders one item element. The enclosing ul/ol wrapper is
// the pipeline's responsibility; nested children convert inside the item so
// nested lists stay inside their parent element.
func convertListItem(block notion.Block, ctx *interfaces.ConvertContext) string {
	var b strings.Builder
	b.WriteString("<li>")
	b.WriteString(richtext.RenderHTML(textRuns(block)))
	b.WriteString(convertChildren(block, ctx))
	b.WriteString("</li>")
	return b.String()
}

func convertToDo(block notion.Block, ctx *interfaces.ConvertContext) string {
	runs := []notion.RichText{}
	checked := false
	if block.Todo != nil {
		runs = block.Todo.RichText
		checked = block.Todo.Checked
	}

	var b strings.Builder
	b.WriteString(`<div class="notion-todo">`)
	b.WriteString(`<input type="checkbox" disabled`)
	if checked {
		b.WriteString(" checked")
	}
	b.WriteString("/> <span>")
	b.WriteString(richtext.RenderHTML(runs))
	b.WriteString("</span>")
	b.WriteString(convertChildren(block, ctx))
	b.WriteString("</div>")
	return b.String()
}

func convertToggle(block notion.Block, ctx *interfaces.ConvertContext) string {
	var b strings.Builder
	b.WriteString("<details><summary>")
	b.WriteString(richtext.RenderHTML(textRuns(block)))
	b.WriteString("</summary>")
	if children := convertChildren(block, ctx); children != "" {
		b.WriteString(children)
	}
	b.WriteString("</details>")
	return b.String()
}

func convertCallout(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := block.Callout
	if payload == nil {
		payload = &notion.CalloutPayload{}
	}

	class := "notion-callout"
	if payload.Color != "" && payload.Color != "default" {
		class += " notion-callout-" + payload.Color
	}

	var b strings.Builder
	b.WriteString(`<aside class="` + htmlutil.EscapeAttr(class) + `">`)
	if payload.Icon != "" {
		b.WriteString(`<span class="notion-callout-icon">`)
		b.WriteString(htmlutil.EscapeText(payload.Icon))
		b.WriteString("</span>")
	}
	b.WriteString(`<div class="notion-callout-body">`)
	b.WriteString(richtext.RenderHTML(payload.RichText))
	b.WriteString(convertChildren(block, ctx))
	b.WriteString("</div></aside>")
	return b.String()
}

func convertCode(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := block.Code
	if payload == nil {
		payload = &notion.CodePayload{}
	}

	var b strings.Builder
	b.WriteString(`<figure class="notion-code"><pre><code`)
	if payload.Language != "" {
		b.WriteString(htmlutil.Attr("class", "language-"+payload.Language))
	}
	b.WriteString(">")
	b.WriteString(htmlutil.EscapeText(richtext.PlainText(payload.RichText)))
	b.WriteString("</code></pre>")
	if len(payload.Caption) > 0 {
		b.WriteString("<figcaption>")
		b.WriteString(richtext.RenderHTML(payload.Caption))
		b.WriteString("</figcaption>")
	}
	b.WriteString("</figure>")
	return b.String()
}

func convertEquation(block notion.Block, _ *interfaces.ConvertContext) string {
	expression := ""
	if block.Equation != nil {
		expression = block.Equation.Expression
	}
	return `<div class="notion-equation"><code>` + htmlutil.EscapeText(expression) + "</code></div>"
}
