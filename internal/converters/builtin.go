package converters

import (
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// builtInPriority leaves room below third-party registrations so hosts can
// override any built-in with priority >= 0.
const builtInPriority = -100

// RegisterBuiltIn wires every converter the engine ships with. The registry
// stays mutable afterwards so hosts can add or override converters before
// freezing.
func RegisterBuiltIn(registry interfaces.ConverterRegistry) error {
	register := func(render func(notion.Block, *interfaces.ConvertContext) string, types ...notion.BlockType) error {
		return registry.Register(types[0], NewFunc(render, types...), builtInPriority)
	}

	type binding struct {
		render func(notion.Block, *interfaces.ConvertContext) string
		types  []notion.BlockType
	}

	bindings := []binding{
		{convertParagraph, []notion.BlockType{notion.BlockParagraph}},
		{convertHeading, []notion.BlockType{notion.BlockHeading1}},
		{convertHeading, []notion.BlockType{notion.BlockHeading2}},
		{convertHeading, []notion.BlockType{notion.BlockHeading3}},
		{convertListItem, []notion.BlockType{notion.BlockBulletedListItem}},
		{convertListItem, []notion.BlockType{notion.BlockNumberedListItem}},
		{convertToDo, []notion.BlockType{notion.BlockToDo}},
		{convertToggle, []notion.BlockType{notion.BlockToggle}},
		{convertQuote, []notion.BlockType{notion.BlockQuote}},
		{convertCallout, []notion.BlockType{notion.BlockCallout}},
		{convertCode, []notion.BlockType{notion.BlockCode}},
		{convertEquation, []notion.BlockType{notion.BlockEquation}},
		{convertDivider, []notion.BlockType{notion.BlockDivider}},
		{convertTable, []notion.BlockType{notion.BlockTable}},
		{convertTableRow, []notion.BlockType{notion.BlockTableRow}},
		{convertImage, []notion.BlockType{notion.BlockImage}},
		{convertVideo, []notion.BlockType{notion.BlockVideo}},
		{convertAudio, []notion.BlockType{notion.BlockAudio}},
		{convertFile, []notion.BlockType{notion.BlockFile}},
		{convertFile, []notion.BlockType{notion.BlockPDF}},
		{convertBookmark, []notion.BlockType{notion.BlockBookmark}},
		{convertBookmark, []notion.BlockType{notion.BlockEmbed}},
		{convertBookmark, []notion.BlockType{notion.BlockLinkPreview}},
		{convertChildPage, []notion.BlockType{notion.BlockChildPage}},
		{convertChildPage, []notion.BlockType{notion.BlockChildDatabase}},
		{convertColumnList, []notion.BlockType{notion.BlockColumnList}},
		{convertColumn, []notion.BlockType{notion.BlockColumn}},
		{convertPassthrough, []notion.BlockType{notion.BlockSyncedBlock}},
		{convertPassthrough, []notion.BlockType{notion.BlockTemplate}},
		{convertBreadcrumb, []notion.BlockType{notion.BlockBreadcrumb}},
		{convertTableOfContents, []notion.BlockType{notion.BlockTableOfContents}},
	}

	for _, b := range bindings {
		if err := register(b.render, b.types...); err != nil {
			return err
		}
	}
	return nil
}
