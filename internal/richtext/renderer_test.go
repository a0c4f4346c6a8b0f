package richtext

import (
	"strings"
	"testing"

	"github.com/goliatone/go-notion-convert/notion"
)

func run(text string) notion.RichText {
	return notion.RichText{PlainText: text}
}

func TestRenderHTML_PlainRun(t *testing.T) {
	out := RenderHTML([]notion.RichText{run("Hello world")})
	if out != "Hello world" {
		t.Fatalf("RenderHTML() = %q", out)
	}
}

func TestRenderHTML_EmptyListPlaceholder(t *testing.T) {
	if out := RenderHTML(nil); out != EmptyPlaceholder {
		t.Fatalf("RenderHTML(nil) = %q, want placeholder", out)
	}
	if out := RenderHTML([]notion.RichText{}); out != EmptyPlaceholder {
		t.Fatalf("RenderHTML(empty) = %q, want placeholder", out)
	}
}

func TestRenderHTML_MissingContentDegrades(t *testing.T) {
	out := RenderHTML([]notion.RichText{run(""), run("ok")})
	if out != "ok" {
		t.Fatalf("RenderHTML() = %q, want %q", out, "ok")
	}
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	out := RenderHTML([]notion.RichText{run(`<script>alert("pwn")</script> & more`)})
	if strings.Contains(out, "<script") {
		t.Fatalf("RenderHTML() leaked raw script tag: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("RenderHTML() missing escaped content: %q", out)
	}
}

func TestRenderHTML_EscapesHref(t *testing.T) {
	r := run("link")
	r.Href = `https://example.com/?a="><script>`
	out := RenderHTML([]notion.RichText{r})
	if strings.Contains(out, `"><script>`) {
		t.Fatalf("RenderHTML() leaked raw attribute content: %q", out)
	}
}

func TestRenderHTML_NestingOrderDeterministic(t *testing.T) {
	// the annotation struct has no ordering, but permutations of setting the
	// flags must all produce the identical nesting
	boldItalic := run("x")
	boldItalic.Annotations.Bold = true
	boldItalic.Annotations.Italic = true

	italicBold := run("x")
	italicBold.Annotations.Italic = true
	italicBold.Annotations.Bold = true

	first := RenderHTML([]notion.RichText{boldItalic})
	second := RenderHTML([]notion.RichText{italicBold})
	if first != second {
		t.Fatalf("nesting order differs: %q vs %q", first, second)
	}
	if first != "<em><strong>x</strong></em>" {
		t.Fatalf("unexpected nesting: %q", first)
	}
}

func TestRenderHTML_FullAnnotationStack(t *testing.T) {
	r := run("x")
	r.Annotations = notion.Annotations{
		Bold:          true,
		Italic:        true,
		Strikethrough: true,
		Underline:     true,
		Code:          true,
		Color:         "red",
	}
	r.Href = "https://example.com"

	out := RenderHTML([]notion.RichText{r})
	want := `<a href="https://example.com"><span class="notion-color-red"><u><del><em><strong><code>x</code></strong></em></del></u></span></a>`
	if out != want {
		t.Fatalf("RenderHTML() = %q, want %q", out, want)
	}
}

func TestRenderHTML_DefaultColorSkipsSpan(t *testing.T) {
	r := run("x")
	r.Annotations.Color = "default"
	if out := RenderHTML([]notion.RichText{r}); out != "x" {
		t.Fatalf("RenderHTML() = %q, default color should not wrap", out)
	}
}

func TestPlainText(t *testing.T) {
	bold := run("world")
	bold.Annotations.Bold = true
	out := PlainText([]notion.RichText{run("Hello "), bold})
	if out != "Hello world" {
		t.Fatalf("PlainText() = %q", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	bold := run("bold")
	bold.Annotations.Bold = true
	linked := run("docs")
	linked.Href = "https://example.com"

	out := RenderMarkdown([]notion.RichText{run("see "), bold, run(" "), linked})
	if out != "see **bold** [docs](https://example.com)" {
		t.Fatalf("RenderMarkdown() = %q", out)
	}
}
