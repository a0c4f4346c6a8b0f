package properties

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// isoDatePattern accepts date-only and datetime ISO-8601 forms.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?)?$`)

// InferType guesses a property type from a raw value's shape. Used only when
// explicit schema metadata is unavailable; rules apply in fixed priority
// order and the first match wins. Inference is lower-confidence than schema:
// values formatted through it carry the Inferred flag.
func InferType(value any) notion.PropertyType {
	switch typed := value.(type) {
	case nil:
		return notion.PropertyText
	case bool:
		return notion.PropertyCheckbox
	case float64, float32, int, int32, int64, json.Number:
		return notion.PropertyNumber
	case map[string]any:
		if isSelectShape(typed) {
			return notion.PropertySelect
		}
		return notion.PropertyText
	case []any:
		return inferArrayType(typed)
	case string:
		return inferStringType(typed)
	default:
		return notion.PropertyText
	}
}

func inferArrayType(values []any) notion.PropertyType {
	if len(values) == 0 {
		return notion.PropertyMultiSelect
	}
	allSelect := true
	allRichText := true
	for _, entry := range values {
		shaped, ok := entry.(map[string]any)
		if !ok {
			return notion.PropertyText
		}
		if !isSelectShape(shaped) {
			allSelect = false
		}
		if !isRichTextShape(shaped) {
			allRichText = false
		}
	}
	if allSelect {
		if len(values) == 1 {
			return notion.PropertySelect
		}
		return notion.PropertyMultiSelect
	}
	if allRichText {
		return notion.PropertyRichText
	}
	return notion.PropertyText
}

func inferStringType(value string) notion.PropertyType {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return notion.PropertyText
	}
	if err := is.URL.Validate(trimmed); err == nil && strings.Contains(trimmed, "://") {
		return notion.PropertyURL
	}
	if err := is.Email.Validate(trimmed); err == nil && strings.Contains(trimmed, "@") {
		return notion.PropertyEmail
	}
	if isoDatePattern.MatchString(trimmed) {
		return notion.PropertyDate
	}
	return notion.PropertyText
}

func isSelectShape(value map[string]any) bool {
	_, hasName := value["name"].(string)
	_, hasColor := value["color"].(string)
	return hasName && hasColor
}

func isRichTextShape(value map[string]any) bool {
	if _, ok := value["plain_text"].(string); ok {
		return true
	}
	_, ok := value["text"].(map[string]any)
	return ok
}

// FormatInferred formats a schemaless raw value by inferring its type first.
// The result is flagged as inferred so callers can surface the lower
// confidence.
func (f *Formatter) FormatInferred(value any) interfaces.FormattedValue {
	formatted := f.Format(coerceValue(InferType(value), value))
	formatted.Inferred = true
	return formatted
}

// coerceValue lifts a raw decoded value into the typed union for the inferred
// type. Shapes that fail to coerce keep the raw value for stringification.
func coerceValue(propType notion.PropertyType, value any) notion.PropertyValue {
	prop := notion.PropertyValue{Type: propType, Raw: value}

	switch propType {
	case notion.PropertyCheckbox:
		if checked, ok := value.(bool); ok {
			prop.Checkbox = &checked
		}
	case notion.PropertyNumber:
		if num, ok := toFloat(value); ok {
			prop.Number = &num
		}
	case notion.PropertySelect:
		if option, ok := toSelectOption(value); ok {
			prop.Select = &option
		}
	case notion.PropertyMultiSelect:
		if entries, ok := value.([]any); ok {
			for _, entry := range entries {
				if option, ok := toSelectOption(entry); ok {
					prop.MultiSelect = append(prop.MultiSelect, option)
				}
			}
		}
	case notion.PropertyRichText:
		if entries, ok := value.([]any); ok {
			prop.RichText = coerceRichText(entries)
		}
	case notion.PropertyURL:
		if raw, ok := value.(string); ok {
			prop.URL = &raw
		}
	case notion.PropertyEmail:
		if raw, ok := value.(string); ok {
			prop.Email = &raw
		}
	case notion.PropertyDate:
		if raw, ok := value.(string); ok {
			prop.Date = &notion.DateValue{Start: raw}
		}
	default:
		if raw, ok := value.(string); ok {
			prop.Type = notion.PropertyText
			prop.RichText = []notion.RichText{{PlainText: raw}}
		}
	}
	return prop
}

func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	default:
		return 0, false
	}
}

func toSelectOption(value any) (notion.SelectOption, bool) {
	shaped, ok := value.(map[string]any)
	if !ok || !isSelectShape(shaped) {
		return notion.SelectOption{}, false
	}
	name, _ := shaped["name"].(string)
	color, _ := shaped["color"].(string)
	return notion.SelectOption{Name: name, Color: color}, true
}

func coerceRichText(entries []any) []notion.RichText {
	runs := make([]notion.RichText, 0, len(entries))
	for _, entry := range entries {
		shaped, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		run := notion.RichText{}
		if plain, ok := shaped["plain_text"].(string); ok {
			run.PlainText = plain
		} else if text, ok := shaped["text"].(map[string]any); ok {
			if content, ok := text["content"].(string); ok {
				run.PlainText = content
			}
		}
		runs = append(runs, run)
	}
	return runs
}

var _ interfaces.PropertyFormatter = (*Formatter)(nil)
