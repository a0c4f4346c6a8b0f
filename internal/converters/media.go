package converters

import (
	"strings"

	"github.com/goliatone/go-notion-convert/internal/htmlutil"
	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

func mediaPayload(block notion.Block, ctx *interfaces.ConvertContext) notion.MediaPayload {
	payload := notion.MediaPayload{}
	if block.Media != nil {
		payload = *block.Media
	}
	if ctx != nil && ctx.ResolveResource != nil {
		payload.Ref = ctx.ResolveResource(payload.Ref)
	}
	return payload
}

func captionedFigure(class, inner string, caption []notion.RichText) string {
	var b strings.Builder
	b.WriteString(`<figure class="` + class + `">`)
	b.WriteString(inner)
	if len(caption) > 0 {
		b.WriteString("<figcaption>")
		b.WriteString(richtext.RenderHTML(caption))
		b.WriteString("</figcaption>")
	}
	b.WriteString("</figure>")
	return b.String()
}

func convertImage(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := mediaPayload(block, ctx)
	if payload.Ref.URL == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	alt := richtext.PlainText(payload.Caption)
	img := "<img" + htmlutil.Attr("src", payload.Ref.URL) + htmlutil.Attr("alt", alt) + "/>"
	return captionedFigure("notion-image", img, payload.Caption)
}

func convertVideo(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := mediaPayload(block, ctx)
	if payload.Ref.URL == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	video := "<video controls" + htmlutil.Attr("src", payload.Ref.URL) + "></video>"
	return captionedFigure("notion-video", video, payload.Caption)
}

func convertAudio(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := mediaPayload(block, ctx)
	if payload.Ref.URL == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}
	audio := "<audio controls" + htmlutil.Attr("src", payload.Ref.URL) + "></audio>"
	return captionedFigure("notion-audio", audio, payload.Caption)
}

// convertFile covers file and pdf blocks: a download link labelled with the
// attachment name, with the caption as secondary text.
func convertFile(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := mediaPayload(block, ctx)
	if payload.Ref.URL == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}

	label := payload.Ref.Name
	if label == "" {
		label = payload.Ref.URL
	}

	var b strings.Builder
	b.WriteString(`<div class="notion-file"><a`)
	b.WriteString(htmlutil.Attr("href", payload.Ref.URL))
	b.WriteString(">")
	b.WriteString(htmlutil.EscapeText(label))
	b.WriteString("</a>")
	if len(payload.Caption) > 0 {
		b.WriteString(`<span class="notion-file-caption">`)
		b.WriteString(richtext.RenderHTML(payload.Caption))
		b.WriteString("</span>")
	}
	b.WriteString("</div>")
	return b.String()
}

// convertBookmark covers bookmark, embed, and link_preview blocks; all three
// degrade to an anchor card since the engine performs no oEmbed expansion.
func convertBookmark(block notion.Block, ctx *interfaces.ConvertContext) string {
	payload := mediaPayload(block, ctx)
	if payload.Ref.URL == "" {
		return UnsupportedPlaceholder(block.Type, BlockID(block))
	}

	label := richtext.PlainText(payload.Caption)
	if label == "" {
		label = payload.Ref.URL
	}

	var b strings.Builder
	b.WriteString(`<div class="notion-bookmark"><a`)
	b.WriteString(htmlutil.Attr("href", payload.Ref.URL))
	b.WriteString(">")
	b.WriteString(htmlutil.EscapeText(label))
	b.WriteString("</a></div>")
	return b.String()
}
