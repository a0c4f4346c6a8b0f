// Package htmlutil centralises escaping so no raw user content reaches markup
// output unescaped, whether placed inside a tag body or an attribute.
package htmlutil

import (
	"html"
	"strings"
)

// EscapeText escapes content placed inside a tag body.
func EscapeText(value string) string {
	return html.EscapeString(value)
}

// EscapeAttr escapes content placed inside a double-quoted attribute value.
// html.EscapeString already covers quotes; newlines are flattened so attribute
// values stay single-line.
func EscapeAttr(value string) string {
	escaped := html.EscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\n", " ")
	return strings.ReplaceAll(escaped, "\r", "")
}

// Attr renders a key="value" pair with an escaped value, including the
// leading space. Empty values render as an empty string.
func Attr(key, value string) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(EscapeAttr(value))
	b.WriteString(`"`)
	return b.String()
}
