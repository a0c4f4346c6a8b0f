package properties

import (
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Sorter, filter, alignment, and formatter identifiers consumed by the grid
// client. These are contract values: renaming one is a breaking change for
// grid deployments.
const (
	SorterString  = "string"
	SorterNumber  = "number"
	SorterDate    = "date"
	SorterBoolean = "boolean"

	FilterText    = "text"
	FilterEnum    = "enum"
	FilterRange   = "range"
	FilterDate    = "date"
	FilterBoolean = "boolean"

	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"

	FormatterText     = "text"
	FormatterRichText = "richText"
	FormatterNumber   = "number"
	FormatterBadge    = "badge"
	FormatterBadges   = "badges"
	FormatterCheckbox = "checkbox"
	FormatterDate     = "datetime"
	FormatterLink     = "link"
	FormatterFiles    = "files"
	FormatterPeople   = "people"
	FormatterList     = "list"
)

type columnDefaults struct {
	width     int
	align     string
	sorter    string
	filter    string
	formatter string
	params    map[string]any
}

var columnTable = map[notion.PropertyType]columnDefaults{
	notion.PropertyTitle:          {width: 240, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterRichText},
	notion.PropertyRichText:       {width: 240, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterRichText},
	notion.PropertyText:           {width: 200, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterText},
	notion.PropertyNumber:         {width: 120, align: AlignRight, sorter: SorterNumber, filter: FilterRange, formatter: FormatterNumber},
	notion.PropertySelect:         {width: 140, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterBadge},
	notion.PropertyStatus:         {width: 140, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterBadge},
	notion.PropertyMultiSelect:    {width: 180, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterBadges},
	notion.PropertyCheckbox:       {width: 90, align: AlignCenter, sorter: SorterBoolean, filter: FilterBoolean, formatter: FormatterCheckbox},
	notion.PropertyDate:           {width: 160, align: AlignLeft, sorter: SorterDate, filter: FilterDate, formatter: FormatterDate},
	notion.PropertyCreatedTime:    {width: 160, align: AlignLeft, sorter: SorterDate, filter: FilterDate, formatter: FormatterDate},
	notion.PropertyLastEditedTime: {width: 160, align: AlignLeft, sorter: SorterDate, filter: FilterDate, formatter: FormatterDate},
	notion.PropertyRelation:       {width: 180, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterList},
	notion.PropertyRollup:         {width: 160, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterText},
	notion.PropertyFormula:        {width: 160, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterText},
	notion.PropertyFiles:          {width: 200, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterFiles},
	notion.PropertyURL:            {width: 200, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterLink},
	notion.PropertyEmail:          {width: 200, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterLink, params: map[string]any{"scheme": "mailto"}},
	notion.PropertyPhoneNumber:    {width: 160, align: AlignLeft, sorter: SorterString, filter: FilterText, formatter: FormatterLink, params: map[string]any{"scheme": "tel"}},
	notion.PropertyPeople:         {width: 180, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterPeople},
	notion.PropertyCreatedBy:      {width: 160, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterPeople},
	notion.PropertyLastEditedBy:   {width: 160, align: AlignLeft, sorter: SorterString, filter: FilterEnum, formatter: FormatterPeople},
}

var genericColumn = columnDefaults{
	width:     200,
	align:     AlignLeft,
	sorter:    SorterString,
	filter:    FilterText,
	formatter: FormatterText,
}

// ColumnConfigFor derives the declarative descriptor for one property column.
// It is a pure function of (type, field, title): identical arguments always
// produce structurally equal results. Unknown types get generic text-column
// defaults.
func ColumnConfigFor(propType notion.PropertyType, field, title string) interfaces.ColumnConfig {
	defaults, ok := columnTable[propType]
	if !ok {
		defaults = genericColumn
	}

	config := interfaces.ColumnConfig{
		Field:     field,
		Title:     title,
		Width:     defaults.width,
		Align:     defaults.align,
		Sorter:    defaults.sorter,
		Filter:    defaults.filter,
		Formatter: defaults.formatter,
	}
	if len(defaults.params) > 0 {
		config.FormatterParams = make(map[string]any, len(defaults.params))
		for key, value := range defaults.params {
			config.FormatterParams[key] = value
		}
	}
	return config
}

// ColumnConfig satisfies interfaces.PropertyFormatter.
func (f *Formatter) ColumnConfig(propType notion.PropertyType, field, title string) interfaces.ColumnConfig {
	return ColumnConfigFor(propType, field, title)
}

// InferType satisfies interfaces.PropertyFormatter.
func (f *Formatter) InferType(value any) notion.PropertyType {
	return InferType(value)
}
