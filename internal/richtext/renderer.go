// Package richtext renders ordered sequences of annotated text runs. Output
// is deterministic: annotations always nest in the same fixed order no matter
// how the source record set them, and every content string is escaped before
// any markup wraps it.
package richtext

import (
	"strings"

	"github.com/goliatone/go-notion-convert/internal/htmlutil"
	"github.com/goliatone/go-notion-convert/notion"
)

// EmptyPlaceholder is returned for a wholly empty run list so the markup
// consumer never collapses the surrounding layout.
const EmptyPlaceholder = "&nbsp;"

// RenderHTML renders the run sequence into inline HTML. Wrapping order,
// innermost first: code, strong, em, del, u, color span, anchor. Runs with
// missing content contribute nothing; a run list with no visible output still
// yields the non-empty placeholder.
func RenderHTML(runs []notion.RichText) string {
	if len(runs) == 0 {
		return EmptyPlaceholder
	}

	var b strings.Builder
	for _, run := range runs {
		b.WriteString(renderRun(run))
	}
	if b.Len() == 0 {
		return EmptyPlaceholder
	}
	return b.String()
}

func renderRun(run notion.RichText) string {
	out := htmlutil.EscapeText(run.PlainText)

	ann := run.Annotations
	if ann.Code {
		out = "<code>" + out + "</code>"
	}
	if ann.Bold {
		out = "<strong>" + out + "</strong>"
	}
	if ann.Italic {
		out = "<em>" + out + "</em>"
	}
	if ann.Strikethrough {
		out = "<del>" + out + "</del>"
	}
	if ann.Underline {
		out = "<u>" + out + "</u>"
	}
	if ann.HasColor() {
		out = `<span class="notion-color-` + htmlutil.EscapeAttr(ann.Color) + `">` + out + "</span>"
	}
	if run.Href != "" {
		out = `<a href="` + htmlutil.EscapeAttr(run.Href) + `">` + out + "</a>"
	}
	return out
}

// PlainText strips all markup and concatenates the raw run contents. Used by
// callers that index or search converted documents.
func PlainText(runs []notion.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}

// RenderMarkdown renders the run sequence as inline GitHub-flavored Markdown.
// Underline and color have no portable Markdown form and degrade to their
// plain content; the HTML projection is the lossless one.
func RenderMarkdown(runs []notion.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(renderMarkdownRun(run))
	}
	return b.String()
}

func renderMarkdownRun(run notion.RichText) string {
	out := run.PlainText
	if out == "" {
		return ""
	}

	ann := run.Annotations
	if ann.Code {
		out = "`" + out + "`"
	}
	if ann.Bold {
		out = "**" + out + "**"
	}
	if ann.Italic {
		out = "_" + out + "_"
	}
	if ann.Strikethrough {
		out = "~~" + out + "~~"
	}
	if run.Href != "" {
		out = "[" + out + "](" + run.Href + ")"
	}
	return out
}
