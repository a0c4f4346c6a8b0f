// Package properties maps typed property values onto grid-facing formatted
// cells and declarative column descriptors. Formatting is pure: the only
// state a Formatter carries is locale plumbing and optional caller-supplied
// capabilities.
package properties

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-notion-convert/internal/richtext"
	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006 3:04 PM"
	rangeSeparator = " → "
)

// Formatter renders property values for the grid client.
type Formatter struct {
	locale          string
	printer         *message.Printer
	mondayLocale    monday.Locale
	resolveRelation interfaces.RelationResolver
	logger          interfaces.Logger
}

// Option customises formatter construction.
type Option func(*Formatter)

// WithLocale sets the locale used for number and date rendering.
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		if strings.TrimSpace(locale) != "" {
			f.locale = locale
		}
	}
}

// WithRelationResolver supplies the optional id-to-title lookup. Without it,
// relation properties stay count-only.
func WithRelationResolver(resolver interfaces.RelationResolver) Option {
	return func(f *Formatter) {
		f.resolveRelation = resolver
	}
}

// WithLogger attaches a logger for formatting diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFormatter constructs a formatter; the default locale is "en".
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{locale: "en"}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(language.Make(f.locale))
	f.mondayLocale = mondayLocale(f.locale)
	return f
}

// Empty is the sentinel returned for null or absent values of any type.
func Empty() interfaces.FormattedValue {
	return interfaces.FormattedValue{Kind: interfaces.KindEmpty}
}

// Format maps one property value to its grid rendering. It never panics and
// never returns a zero Kind: absent payloads yield the empty sentinel and
// unknown types degrade to best-effort stringification.
func (f *Formatter) Format(value notion.PropertyValue) interfaces.FormattedValue {
	if value.IsEmpty() {
		return Empty()
	}

	switch value.Type {
	case notion.PropertyTitle, notion.PropertyRichText, notion.PropertyText:
		return interfaces.FormattedValue{
			Kind: interfaces.KindRichText,
			Text: richtext.PlainText(value.RichText),
		}
	case notion.PropertyNumber:
		return interfaces.FormattedValue{
			Kind: interfaces.KindNumber,
			Text: f.formatNumber(*value.Number),
		}
	case notion.PropertySelect:
		return badgeValue(*value.Select)
	case notion.PropertyStatus:
		return badgeValue(*value.Status)
	case notion.PropertyMultiSelect:
		return f.formatMultiSelect(value.MultiSelect)
	case notion.PropertyCheckbox:
		return interfaces.FormattedValue{
			Kind:  interfaces.KindCheckbox,
			Text:  strconv.FormatBool(*value.Checkbox),
			Check: value.Checkbox,
		}
	case notion.PropertyDate:
		return interfaces.FormattedValue{
			Kind: interfaces.KindDate,
			Text: f.formatDate(*value.Date),
		}
	case notion.PropertyCreatedTime, notion.PropertyLastEditedTime:
		return interfaces.FormattedValue{
			Kind: interfaces.KindDate,
			Text: f.formatDateBound(value.Timestamp),
		}
	case notion.PropertyRelation:
		return f.formatRelation(value.Relation)
	case notion.PropertyRollup:
		return f.formatRollup(*value.Rollup)
	case notion.PropertyFormula:
		return f.formatFormula(*value.Formula)
	case notion.PropertyFiles:
		return formatFiles(value.Files)
	case notion.PropertyURL:
		return f.formatLink(*value.URL, *value.URL, linkKindURL)
	case notion.PropertyEmail:
		return f.formatLink(*value.Email, "mailto:"+*value.Email, linkKindEmail)
	case notion.PropertyPhoneNumber:
		return f.formatLink(*value.PhoneNumber, "tel:"+*value.PhoneNumber, linkKindPhone)
	case notion.PropertyPeople:
		return formatPeople(value.People)
	case notion.PropertyCreatedBy, notion.PropertyLastEditedBy:
		return formatPeople([]notion.User{*value.User})
	default:
		if f.logger != nil {
			f.logger.Debug("stringifying unknown property type", "property_type", string(value.Type))
		}
		return interfaces.FormattedValue{
			Kind: interfaces.KindText,
			Text: strings.TrimSpace(fmt.Sprintf("%v", value.Raw)),
		}
	}
}

func badgeValue(option notion.SelectOption) interfaces.FormattedValue {
	return interfaces.FormattedValue{
		Kind:   interfaces.KindBadge,
		Text:   option.Name,
		Badges: []interfaces.Badge{{Label: option.Name, Color: option.Color}},
	}
}

func (f *Formatter) formatMultiSelect(options []notion.SelectOption) interfaces.FormattedValue {
	badges := make([]interfaces.Badge, 0, len(options))
	labels := make([]string, 0, len(options))
	for _, option := range options {
		badges = append(badges, interfaces.Badge{Label: option.Name, Color: option.Color})
		labels = append(labels, option.Name)
	}
	return interfaces.FormattedValue{
		Kind:   interfaces.KindBadges,
		Text:   strings.Join(labels, ", "),
		Badges: badges,
	}
}

// formatNumber renders with locale-aware thousands separators. Values without
// a fractional part render as integers, everything else keeps up to two
// fractional digits.
func (f *Formatter) formatNumber(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
	}
	return f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
}

func (f *Formatter) formatDate(value notion.DateValue) string {
	start := f.formatDateBound(value.Start)
	if value.End == "" {
		return start
	}
	return start + rangeSeparator + f.formatDateBound(value.End)
}

// formatDateBound parses one ISO-8601 bound and renders it in the formatter
// locale. The time-of-day is included only when the source carries one.
// Unparseable input is returned verbatim rather than dropped.
func (f *Formatter) formatDateBound(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return monday.Format(parsed, dateTimeLayout, f.mondayLocale)
	}
	if parsed, err := time.Parse("2006-01-02", trimmed); err == nil {
		return monday.Format(parsed, dateLayout, f.mondayLocale)
	}
	return trimmed
}

// formatRelation stays count-only unless the caller supplied a resolver;
// unresolvable ids degrade to the id itself rather than disappearing.
func (f *Formatter) formatRelation(ids []string) interfaces.FormattedValue {
	if f.resolveRelation == nil {
		label := "1 linked record"
		if len(ids) != 1 {
			label = fmt.Sprintf("%d linked records", len(ids))
		}
		return interfaces.FormattedValue{Kind: interfaces.KindText, Text: label}
	}

	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if title, ok := f.resolveRelation(id); ok && title != "" {
			labels = append(labels, title)
			continue
		}
		labels = append(labels, id)
	}
	return interfaces.FormattedValue{
		Kind: interfaces.KindList,
		Text: strings.Join(labels, ", "),
	}
}

func (f *Formatter) formatRollup(value notion.RollupValue) interfaces.FormattedValue {
	switch value.Type {
	case "array":
		parts := make([]string, 0, len(value.Array))
		for _, inner := range value.Array {
			if formatted := f.Format(inner); formatted.Kind != interfaces.KindEmpty {
				parts = append(parts, formatted.Text)
			}
		}
		return interfaces.FormattedValue{Kind: interfaces.KindList, Text: strings.Join(parts, ", ")}
	default:
		return f.formatScalarResult(value.Type, value.Number, value.Date, value.String, value.Bool)
	}
}

func (f *Formatter) formatFormula(value notion.FormulaValue) interfaces.FormattedValue {
	return f.formatScalarResult(value.Type, value.Number, value.Date, value.String, value.Bool)
}

// formatScalarResult re-enters the main dispatch table with the unwrapped
// inner result so rollups and formulas format exactly like first-class values.
func (f *Formatter) formatScalarResult(kind string, num *float64, date *notion.DateValue, str *string, boolean *bool) interfaces.FormattedValue {
	switch kind {
	case "number":
		if num == nil {
			return Empty()
		}
		return f.Format(notion.PropertyValue{Type: notion.PropertyNumber, Number: num})
	case "date":
		if date == nil {
			return Empty()
		}
		return f.Format(notion.PropertyValue{Type: notion.PropertyDate, Date: date})
	case "string":
		if str == nil || *str == "" {
			return Empty()
		}
		return interfaces.FormattedValue{Kind: interfaces.KindText, Text: *str}
	case "boolean":
		if boolean == nil {
			return Empty()
		}
		return f.Format(notion.PropertyValue{Type: notion.PropertyCheckbox, Checkbox: boolean})
	default:
		return Empty()
	}
}

func formatFiles(files []notion.FileValue) interfaces.FormattedValue {
	refs := make([]interfaces.FileRef, 0, len(files))
	names := make([]string, 0, len(files))
	for _, file := range files {
		name := file.Name
		if name == "" {
			name = file.URL
		}
		refs = append(refs, interfaces.FileRef{Name: name, URL: file.URL})
		names = append(names, name)
	}
	return interfaces.FormattedValue{
		Kind:  interfaces.KindFiles,
		Text:  strings.Join(names, ", "),
		Files: refs,
	}
}

func formatPeople(users []notion.User) interfaces.FormattedValue {
	people := make([]interfaces.Person, 0, len(users))
	names := make([]string, 0, len(users))
	for _, user := range users {
		name := user.Name
		if name == "" {
			name = user.ID
		}
		people = append(people, interfaces.Person{Name: name, AvatarURL: user.AvatarURL})
		names = append(names, name)
	}
	return interfaces.FormattedValue{
		Kind:   interfaces.KindPeople,
		Text:   strings.Join(names, ", "),
		People: people,
	}
}

type linkKind int

const (
	linkKindURL linkKind = iota
	linkKindEmail
	linkKindPhone
)

// formatLink validates before linking; a value that fails validation renders
// as plain text instead of a broken link.
func (f *Formatter) formatLink(label, href string, kind linkKind) interfaces.FormattedValue {
	var err error
	switch kind {
	case linkKindURL:
		err = is.URL.Validate(label)
	case linkKindEmail:
		err = is.Email.Validate(label)
	case linkKindPhone:
		err = is.E164.Validate(normalizePhone(label))
	}
	if err != nil {
		return interfaces.FormattedValue{Kind: interfaces.KindText, Text: label}
	}
	return interfaces.FormattedValue{
		Kind:  interfaces.KindLink,
		Text:  label,
		Links: []interfaces.Link{{Label: label, Href: href}},
	}
}

// normalizePhone strips common separators so human-formatted numbers pass the
// E.164 rule.
func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mondayLocale maps a BCP 47 tag onto the closest monday locale, defaulting
// to en_US.
func mondayLocale(locale string) monday.Locale {
	base := strings.ToLower(strings.SplitN(strings.ReplaceAll(locale, "_", "-"), "-", 2)[0])
	switch base {
	case "de":
		return monday.LocaleDeDE
	case "es":
		return monday.LocaleEsES
	case "fr":
		return monday.LocaleFrFR
	case "it":
		return monday.LocaleItIT
	case "ja":
		return monday.LocaleJaJP
	case "nl":
		return monday.LocaleNlNL
	case "pt":
		return monday.LocalePtPT
	case "ru":
		return monday.LocaleRuRU
	case "zh":
		return monday.LocaleZhCN
	default:
		return monday.LocaleEnUS
	}
}
