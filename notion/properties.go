package notion

// PropertyType tags one variant of the property value union.
type PropertyType string

const (
	PropertyTitle          PropertyType = "title"
	PropertyRichText       PropertyType = "rich_text"
	PropertyText           PropertyType = "text"
	PropertyNumber         PropertyType = "number"
	PropertySelect         PropertyType = "select"
	PropertyMultiSelect    PropertyType = "multi_select"
	PropertyStatus         PropertyType = "status"
	PropertyCheckbox       PropertyType = "checkbox"
	PropertyDate           PropertyType = "date"
	PropertyCreatedTime    PropertyType = "created_time"
	PropertyLastEditedTime PropertyType = "last_edited_time"
	PropertyRelation       PropertyType = "relation"
	PropertyRollup         PropertyType = "rollup"
	PropertyFormula        PropertyType = "formula"
	PropertyFiles          PropertyType = "files"
	PropertyURL            PropertyType = "url"
	PropertyEmail          PropertyType = "email"
	PropertyPhoneNumber    PropertyType = "phone_number"
	PropertyPeople         PropertyType = "people"
	PropertyCreatedBy      PropertyType = "created_by"
	PropertyLastEditedBy   PropertyType = "last_edited_by"
)

// PropertyValue is the decoded value of one typed field on a structured
// record. Exactly the fields matching Type are populated; everything else
// stays zero. Raw preserves the undecoded value for unknown types so the
// formatter can still stringify something visible.
type PropertyValue struct {
	Type PropertyType

	RichText    []RichText
	Number      *float64
	Select      *SelectOption
	MultiSelect []SelectOption
	Status      *SelectOption
	Checkbox    *bool
	Date        *DateValue
	Timestamp   string
	Relation    []string
	Rollup      *RollupValue
	Formula     *FormulaValue
	Files       []FileValue
	URL         *string
	Email       *string
	PhoneNumber *string
	People      []User
	User        *User

	Raw any
}

// IsEmpty reports whether the value carries no payload for its type.
func (p PropertyValue) IsEmpty() bool {
	switch p.Type {
	case PropertyTitle, PropertyRichText, PropertyText:
		return len(p.RichText) == 0
	case PropertyNumber:
		return p.Number == nil
	case PropertySelect:
		return p.Select == nil
	case PropertyMultiSelect:
		return len(p.MultiSelect) == 0
	case PropertyStatus:
		return p.Status == nil
	case PropertyCheckbox:
		return p.Checkbox == nil
	case PropertyDate:
		return p.Date == nil || p.Date.Start == ""
	case PropertyCreatedTime, PropertyLastEditedTime:
		return p.Timestamp == ""
	case PropertyRelation:
		return len(p.Relation) == 0
	case PropertyRollup:
		return p.Rollup == nil
	case PropertyFormula:
		return p.Formula == nil
	case PropertyFiles:
		return len(p.Files) == 0
	case PropertyURL:
		return p.URL == nil
	case PropertyEmail:
		return p.Email == nil
	case PropertyPhoneNumber:
		return p.PhoneNumber == nil
	case PropertyPeople:
		return len(p.People) == 0
	case PropertyCreatedBy, PropertyLastEditedBy:
		return p.User == nil
	default:
		return p.Raw == nil
	}
}

// SelectOption is one badge-style choice with its color tag.
type SelectOption struct {
	Name  string
	Color string
}

// DateValue holds ISO-8601 bounds as received from upstream. End is empty for
// point-in-time values.
type DateValue struct {
	Start string
	End   string
}

// HasTime reports whether the start bound includes a time-of-day component.
func (d DateValue) HasTime() bool {
	for _, r := range d.Start {
		if r == 'T' {
			return true
		}
	}
	return false
}

// RollupValue wraps the aggregated result of a rollup property.
type RollupValue struct {
	Type   string
	Number *float64
	Date   *DateValue
	String *string
	Bool   *bool
	Array  []PropertyValue
}

// FormulaValue wraps the computed result of a formula property.
type FormulaValue struct {
	Type   string
	Number *float64
	Date   *DateValue
	String *string
	Bool   *bool
}

// FileValue is one attachment entry on a files property.
type FileValue struct {
	Name string
	URL  string
}

// User identifies a person reference with an optional avatar.
type User struct {
	ID        string
	Name      string
	AvatarURL string
}
