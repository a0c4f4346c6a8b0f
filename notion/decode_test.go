package notion

import (
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"6E29F82C-73E4-43D0-AE3B-14EF38BBDBB4", "6e29f82c-73e4-43d0-ae3b-14ef38bbdbb4"},
		{"6e29f82c73e443d0ae3b14ef38bbdbb4", "6e29f82c-73e4-43d0-ae3b-14ef38bbdbb4"},
		{"not-a-uuid", "not-a-uuid"},
		{"  ", ""},
	}
	for _, tc := range tests {
		if got := NormalizeID(tc.in); got != tc.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeBlocks_Paragraph(t *testing.T) {
	data := []byte(`[{
		"id": "6e29f82c73e443d0ae3b14ef38bbdbb4",
		"type": "paragraph",
		"paragraph": {
			"rich_text": [
				{"plain_text": "Hello ", "annotations": {}},
				{"plain_text": "world", "annotations": {"bold": true}}
			]
		}
	}]`)

	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d", len(blocks))
	}

	block := blocks[0]
	if block.ID != "6e29f82c-73e4-43d0-ae3b-14ef38bbdbb4" {
		t.Fatalf("ID not normalized: %q", block.ID)
	}
	if block.Type != BlockParagraph || block.Text == nil {
		t.Fatalf("unexpected block: %+v", block)
	}
	runs := block.Text.RichText
	if len(runs) != 2 || runs[0].PlainText != "Hello " || !runs[1].Annotations.Bold {
		t.Fatalf("runs = %+v", runs)
	}
}

func TestDecodeBlocks_ResultsEnvelope(t *testing.T) {
	data := []byte(`{"object":"list","results":[{"type":"divider","divider":{}}]}`)
	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	if len(blocks) != 1 || blocks[0].Type != BlockDivider {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestDecodeBlocks_RichTextFallbacks(t *testing.T) {
	data := []byte(`[{
		"type": "paragraph",
		"paragraph": {
			"rich_text": [{
				"type": "text",
				"text": {"content": "from content", "link": {"url": "https://example.com"}},
				"annotations": {}
			}]
		}
	}]`)

	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	run := blocks[0].Text.RichText[0]
	if run.PlainText != "from content" {
		t.Fatalf("plain_text fallback failed: %q", run.PlainText)
	}
	if run.Href != "https://example.com" {
		t.Fatalf("href fallback failed: %q", run.Href)
	}
}

func TestDecodeBlocks_NestedChildren(t *testing.T) {
	data := []byte(`[{
		"type": "toggle",
		"toggle": {"rich_text": [{"plain_text": "More"}]},
		"children": [{
			"type": "paragraph",
			"paragraph": {"rich_text": [{"plain_text": "hidden"}]}
		}]
	}]`)

	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	block := blocks[0]
	if !block.HasChildren || len(block.Children) != 1 {
		t.Fatalf("children not decoded: %+v", block)
	}
	if block.Children[0].Type != BlockParagraph {
		t.Fatalf("child type = %q", block.Children[0].Type)
	}
}

func TestDecodeBlocks_MissingTypeBecomesUnsupported(t *testing.T) {
	blocks, err := DecodeBlocks([]byte(`[{"id": "abc"}]`))
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	if blocks[0].Type != BlockUnsupported {
		t.Fatalf("Type = %q, want %q", blocks[0].Type, BlockUnsupported)
	}
}

func TestDecodeBlocks_MalformedJSON(t *testing.T) {
	_, err := DecodeBlocks([]byte(`[{`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("error not categorized: %v", err)
	}
}

func TestDecodeBlocks_Empty(t *testing.T) {
	blocks, err := DecodeBlocks([]byte("  "))
	if err != nil || blocks != nil {
		t.Fatalf("DecodeBlocks(blank) = %v, %v", blocks, err)
	}
}

func TestDecodeBlocks_TableRowCells(t *testing.T) {
	data := []byte(`[{
		"type": "table_row",
		"table_row": {"cells": [
			[{"plain_text": "Name"}],
			[{"plain_text": "Status"}]
		]}
	}]`)

	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	row := blocks[0].TableRow
	if row == nil || len(row.Cells) != 2 || row.Cells[1][0].PlainText != "Status" {
		t.Fatalf("cells = %+v", row)
	}
}

func TestDecodeBlocks_MediaShapes(t *testing.T) {
	data := []byte(`[
		{"type": "image", "image": {"external": {"url": "https://example.com/a.png"}}},
		{"type": "file", "file": {"file": {"url": "https://example.com/b.pdf"}, "name": "b.pdf"}},
		{"type": "bookmark", "bookmark": {"url": "https://example.com"}}
	]`)

	blocks, err := DecodeBlocks(data)
	if err != nil {
		t.Fatalf("DecodeBlocks() error: %v", err)
	}
	if blocks[0].Media.Ref.URL != "https://example.com/a.png" {
		t.Fatalf("external shape: %+v", blocks[0].Media)
	}
	if blocks[1].Media.Ref.URL != "https://example.com/b.pdf" || blocks[1].Media.Ref.Name != "b.pdf" {
		t.Fatalf("hosted shape: %+v", blocks[1].Media)
	}
	if blocks[2].Media.Ref.URL != "https://example.com" {
		t.Fatalf("flat shape: %+v", blocks[2].Media)
	}
}

func TestDecodeProperty_Select(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"select","select":{"name":"Done","color":"green"}}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if prop.Type != PropertySelect || prop.Select == nil || prop.Select.Name != "Done" {
		t.Fatalf("prop = %+v", prop)
	}
}

func TestDecodeProperty_NullSelect(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"select","select":null}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if !prop.IsEmpty() {
		t.Fatalf("null select must be empty: %+v", prop)
	}
}

func TestDecodeProperty_Relation(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"relation","relation":[
		{"id":"6e29f82c73e443d0ae3b14ef38bbdbb4"}
	]}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if len(prop.Relation) != 1 || prop.Relation[0] != "6e29f82c-73e4-43d0-ae3b-14ef38bbdbb4" {
		t.Fatalf("relation ids = %+v", prop.Relation)
	}
}

func TestDecodeProperty_RollupArray(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"rollup","rollup":{
		"type": "array",
		"array": [
			{"type":"number","number":5},
			{"type":"rich_text","rich_text":[{"plain_text":"x"}]}
		]
	}}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if prop.Rollup == nil || len(prop.Rollup.Array) != 2 {
		t.Fatalf("rollup = %+v", prop.Rollup)
	}
	if *prop.Rollup.Array[0].Number != 5 {
		t.Fatalf("inner number = %+v", prop.Rollup.Array[0])
	}
}

func TestDecodeProperty_Formula(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"formula","formula":{"type":"boolean","boolean":true}}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if prop.Formula == nil || prop.Formula.Bool == nil || !*prop.Formula.Bool {
		t.Fatalf("formula = %+v", prop.Formula)
	}
}

func TestDecodeProperty_MissingTypeTag(t *testing.T) {
	_, err := DecodeProperty([]byte(`{"name":"x"}`))
	if err == nil {
		t.Fatalf("expected error for missing type tag")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("error not categorized: %v", err)
	}
}

func TestDecodeProperty_UnknownTypeKeepsRaw(t *testing.T) {
	prop, err := DecodeProperty([]byte(`{"type":"verification","verification":{"state":"verified"}}`))
	if err != nil {
		t.Fatalf("DecodeProperty() error: %v", err)
	}
	if prop.Raw == nil {
		t.Fatalf("raw payload must survive for unknown types")
	}
}

func TestValidateEnvelope(t *testing.T) {
	if err := ValidateEnvelope([]byte(`[{"type":"paragraph","paragraph":{}}]`)); err != nil {
		t.Fatalf("valid envelope rejected: %v", err)
	}

	err := ValidateEnvelope([]byte(`[{"id":"abc"}]`))
	if err == nil {
		t.Fatalf("envelope missing type must fail")
	}
	if !errors.Is(err, ErrEnvelopeInvalid) {
		t.Fatalf("error not wrapped: %v", err)
	}
}

func TestDecodeBlocksStrict(t *testing.T) {
	blocks, err := DecodeBlocksStrict([]byte(`[{"type":"divider","divider":{}}]`))
	if err != nil || len(blocks) != 1 {
		t.Fatalf("DecodeBlocksStrict() = %v, %v", blocks, err)
	}

	_, err = DecodeBlocksStrict([]byte(`[{"type":""}]`))
	if err == nil || !errors.Is(err, ErrEnvelopeInvalid) {
		t.Fatalf("empty type tag must fail strict decode: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid") {
		t.Fatalf("error message: %v", err)
	}
}
