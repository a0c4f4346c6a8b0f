package notionconvert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

func TestNew_ValidatesConfig(t *testing.T) {
	_, err := New(Config{MaxDepth: 0, Locale: "en"})
	assert.ErrorIs(t, err, ErrMaxDepthInvalid)

	_, err = New(Config{MaxDepth: 8, Locale: "  "})
	assert.ErrorIs(t, err, ErrLocaleRequired)

	engine, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, engine)
}

func TestEngine_ConvertBlocksEndToEnd(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	blocks, err := engine.DecodeBlocks([]byte(`[
		{"type": "heading_1", "heading_1": {"rich_text": [{"plain_text": "Release Notes"}]}},
		{"type": "paragraph", "paragraph": {"rich_text": [
			{"plain_text": "Hello ", "annotations": {}},
			{"plain_text": "world", "annotations": {"bold": true}}
		]}},
		{"type": "bulleted_list_item", "bulleted_list_item": {"rich_text": [{"plain_text": "one"}]}},
		{"type": "bulleted_list_item", "bulleted_list_item": {"rich_text": [{"plain_text": "two"}]}}
	]`))
	require.NoError(t, err)

	html, diags := engine.ConvertBlocks(blocks)
	assert.Contains(t, html, `<h1 id="release-notes">Release Notes</h1>`)
	assert.Contains(t, html, "<p>Hello <strong>world</strong></p>")
	assert.Contains(t, html, "<ul><li>one</li><li>two</li></ul>")
	assert.Zero(t, diags.UnsupportedCount)
	assert.Zero(t, diags.TruncatedCount)
}

func TestEngine_ConvertToMarkdown(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	doc, diags := engine.ConvertToMarkdown([]notion.Block{{
		ID:   "h",
		Type: notion.BlockHeading2,
		Text: &notion.TextPayload{RichText: []notion.RichText{{PlainText: "Changelog"}}},
	}})
	assert.Contains(t, doc, "## Changelog")
	assert.Zero(t, diags.UnsupportedCount)
}

func TestEngine_CustomConverterOverridesBuiltIn(t *testing.T) {
	custom := converterFunc(func(block notion.Block, _ *ConvertContext) string {
		return `<div class="host-divider"></div>`
	})

	engine, err := New(DefaultConfig(), WithConverter(notion.BlockDivider, custom, 0))
	require.NoError(t, err)

	html, _ := engine.ConvertBlocks([]notion.Block{{ID: "d", Type: notion.BlockDivider}})
	assert.Equal(t, `<div class="host-divider"></div>`, html)
}

func TestEngine_UnsupportedDiagnostics(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	html, diags := engine.ConvertBlocks([]notion.Block{
		{ID: "xyz", Type: notion.BlockType("unknown_widget")},
	})
	assert.Contains(t, html, "unknown_widget")
	assert.Contains(t, html, "xyz")
	require.Len(t, diags.UnsupportedItems, 1)
	assert.Equal(t, "xyz", diags.UnsupportedItems[0].ID)
	assert.Equal(t, 1, diags.UnsupportedCount)
}

func TestEngine_StrictDecode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictDecode = true
	engine, err := New(cfg)
	require.NoError(t, err)

	_, err = engine.DecodeBlocks([]byte(`[{"id": "abc"}]`))
	assert.ErrorIs(t, err, notion.ErrEnvelopeInvalid)

	cfg.StrictDecode = false
	lenient, err := New(cfg)
	require.NoError(t, err)
	blocks, err := lenient.DecodeBlocks([]byte(`[{"id": "abc"}]`))
	require.NoError(t, err)
	assert.Equal(t, notion.BlockUnsupported, blocks[0].Type)
}

func TestEngine_FormatProperty(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	got := engine.FormatProperty(notion.PropertyValue{
		Type:   notion.PropertySelect,
		Select: &notion.SelectOption{Name: "Done", Color: "green"},
	})
	assert.Equal(t, interfaces.KindBadge, got.Kind)
	require.Len(t, got.Badges, 1)
	assert.Equal(t, "green", got.Badges[0].Color)

	assert.Equal(t, interfaces.KindEmpty, engine.FormatProperty(notion.PropertyValue{Type: notion.PropertyNumber}).Kind)
}

func TestEngine_FormatInferred(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	got := engine.FormatInferred(true)
	assert.True(t, got.Inferred)
	assert.Equal(t, interfaces.KindCheckbox, got.Kind)
	assert.Equal(t, notion.PropertyCheckbox, engine.InferType(true))
}

func TestEngine_ColumnConfigFor(t *testing.T) {
	engine, err := New(DefaultConfig())
	require.NoError(t, err)

	config := engine.ColumnConfigFor(notion.PropertySelect, "status", "Status")
	assert.Equal(t, "status", config.Field)
	assert.Equal(t, "enum", config.Filter)
	assert.Equal(t, "badge", config.Formatter)
}

func TestEngine_RelationResolver(t *testing.T) {
	engine, err := New(DefaultConfig(), WithRelationResolver(func(id string) (string, bool) {
		return "Roadmap", true
	}))
	require.NoError(t, err)

	got := engine.FormatProperty(notion.PropertyValue{
		Type:     notion.PropertyRelation,
		Relation: []string{"page-1"},
	})
	assert.Equal(t, "Roadmap", got.Text)
}

func TestEngine_ResourceResolver(t *testing.T) {
	engine, err := New(DefaultConfig(), WithResourceResolver(func(ref notion.ResourceRef) notion.ResourceRef {
		ref.URL = "https://cdn.example.com/a.png"
		return ref
	}))
	require.NoError(t, err)

	html, _ := engine.ConvertBlocks([]notion.Block{{
		ID:    "img",
		Type:  notion.BlockImage,
		Media: &notion.MediaPayload{Ref: notion.ResourceRef{URL: "https://upstream.example.com/a.png"}},
	}})
	assert.Contains(t, html, "https://cdn.example.com/a.png")
}

// converterFunc adapts a bare function into a BlockConverter for tests.
type converterFunc func(notion.Block, *ConvertContext) string

func (converterFunc) Supports(notion.BlockType) bool { return true }

func (f converterFunc) Convert(block notion.Block, ctx *ConvertContext) string {
	return f(block, ctx)
}
