package interfaces

import "github.com/goliatone/go-notion-convert/notion"

// FormattedValue is the grid-facing projection of one property value. Kind
// selects which of the optional fields are populated; Text is always set to a
// human-readable rendering so plain consumers need no kind switch.
type FormattedValue struct {
	Kind   FormattedKind
	Text   string
	Badges []Badge
	Links  []Link
	Files  []FileRef
	People []Person
	Check  *bool

	// Inferred marks values formatted through shape inference instead of
	// explicit schema metadata; consumers may want to surface the lower
	// confidence.
	Inferred bool
}

// FormattedKind enumerates the renderings a grid client distinguishes.
type FormattedKind string

const (
	KindEmpty    FormattedKind = "empty"
	KindText     FormattedKind = "text"
	KindRichText FormattedKind = "rich_text"
	KindNumber   FormattedKind = "number"
	KindBadge    FormattedKind = "badge"
	KindBadges   FormattedKind = "badges"
	KindCheckbox FormattedKind = "checkbox"
	KindDate     FormattedKind = "date"
	KindLink     FormattedKind = "link"
	KindFiles    FormattedKind = "files"
	KindPeople   FormattedKind = "people"
	KindList     FormattedKind = "list"
)

// Badge is a single select/status chip.
type Badge struct {
	Label string
	Color string
}

// Link is a validated URL/email/phone descriptor. Values that fail validation
// never become links; they degrade to a plain KindText rendering instead.
type Link struct {
	Label string
	Href  string
}

// FileRef names one attachment.
type FileRef struct {
	Name string
	URL  string
}

// Person is a people/created-by/last-edited-by entry.
type Person struct {
	Name      string
	AvatarURL string
}

// PropertyFormatter turns typed property values into grid cells and derives
// the declarative column descriptors the grid client consumes.
type PropertyFormatter interface {
	Format(value notion.PropertyValue) FormattedValue
	ColumnConfig(propType notion.PropertyType, field, title string) ColumnConfig
	InferType(value any) notion.PropertyType
}

// ColumnConfig tells the grid client how to display, sort, and filter one
// property column. Generation is a pure function of (type, field, title).
type ColumnConfig struct {
	Field           string
	Title           string
	Width           int
	Align           string
	Sorter          string
	Filter          string
	Formatter       string
	FormatterParams map[string]any
}
