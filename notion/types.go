// Package notion models the block tree and property values produced by the
// upstream structured-document API. The types are decoded snapshots: the
// engine never talks to the network, callers hand it fully fetched trees.
package notion

// BlockType tags one variant of the source block union.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockToDo             BlockType = "to_do"
	BlockToggle           BlockType = "toggle"
	BlockQuote            BlockType = "quote"
	BlockCallout          BlockType = "callout"
	BlockCode             BlockType = "code"
	BlockDivider          BlockType = "divider"
	BlockTable            BlockType = "table"
	BlockTableRow         BlockType = "table_row"
	BlockImage            BlockType = "image"
	BlockFile             BlockType = "file"
	BlockVideo            BlockType = "video"
	BlockPDF              BlockType = "pdf"
	BlockAudio            BlockType = "audio"
	BlockBookmark         BlockType = "bookmark"
	BlockEmbed            BlockType = "embed"
	BlockLinkPreview      BlockType = "link_preview"
	BlockEquation         BlockType = "equation"
	BlockChildPage        BlockType = "child_page"
	BlockChildDatabase    BlockType = "child_database"
	BlockColumnList       BlockType = "column_list"
	BlockColumn           BlockType = "column"
	BlockSyncedBlock      BlockType = "synced_block"
	BlockTemplate         BlockType = "template"
	BlockBreadcrumb       BlockType = "breadcrumb"
	BlockTableOfContents  BlockType = "table_of_contents"
	BlockUnsupported      BlockType = "unsupported"
)

// Block is one node of the source content tree. Exactly one payload pointer is
// populated, selected by Type; payloads are shared between variants that carry
// the same shape (paragraph, headings, quote, list items, and toggle all use
// Text).
type Block struct {
	ID          string
	Type        BlockType
	HasChildren bool
	Children    []Block

	Text     *TextPayload
	Todo     *TodoPayload
	Callout  *CalloutPayload
	Code     *CodePayload
	Table    *TablePayload
	TableRow *TableRowPayload
	Media    *MediaPayload
	Equation *EquationPayload
	Child    *ChildPayload
}

// TextPayload carries the annotated runs shared by paragraph, heading, quote,
// list item, and toggle blocks.
type TextPayload struct {
	RichText []RichText
	Color    string
}

// TodoPayload adds the checked flag to a run sequence.
type TodoPayload struct {
	RichText []RichText
	Checked  bool
}

// CalloutPayload carries runs plus the icon/color pair.
type CalloutPayload struct {
	RichText []RichText
	Icon     string
	Color    string
}

// CodePayload carries raw source text with a language tag and optional caption.
type CodePayload struct {
	RichText []RichText
	Caption  []RichText
	Language string
}

// TablePayload describes the fixed-width grid; the rows live in the block's
// children as table_row blocks.
type TablePayload struct {
	Width           int
	HasColumnHeader bool
	HasRowHeader    bool
}

// TableRowPayload holds one cell sequence; each cell is its own run list.
type TableRowPayload struct {
	Cells [][]RichText
}

// MediaPayload carries an already-resolved resource reference for image, file,
// video, pdf, audio, bookmark, embed, and link_preview blocks. URL resolution
// (download, re-hosting) is an upstream collaborator's job.
type MediaPayload struct {
	Ref     ResourceRef
	Caption []RichText
}

// EquationPayload holds a raw expression.
type EquationPayload struct {
	Expression string
}

// ChildPayload names a referenced child page or database.
type ChildPayload struct {
	Title string
}

// ResourceRef points at an externally hosted or already-downloaded resource.
type ResourceRef struct {
	URL  string
	Name string
}

// RichText is a contiguous span of text sharing one annotation set and an
// optional hyperlink.
type RichText struct {
	PlainText   string
	Href        string
	Annotations Annotations
}

// Annotations is the style set attached to a run. The zero value means
// unstyled default-colored text.
type Annotations struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	Code          bool
	Color         string
}

// HasColor reports whether the run carries a non-default color tag.
func (a Annotations) HasColor() bool {
	return a.Color != "" && a.Color != "default"
}
