package properties

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-notion-convert/notion"
)

func TestColumnConfigFor_Select(t *testing.T) {
	config := ColumnConfigFor(notion.PropertySelect, "status", "Status")

	if config.Field != "status" || config.Title != "Status" {
		t.Fatalf("identity fields: %+v", config)
	}
	if config.Filter != FilterEnum {
		t.Fatalf("Filter = %q, want %q", config.Filter, FilterEnum)
	}
	if config.Formatter != FormatterBadge {
		t.Fatalf("Formatter = %q, want %q", config.Formatter, FormatterBadge)
	}
	if config.Width != 140 {
		t.Fatalf("Width = %d, want 140", config.Width)
	}
}

func TestColumnConfigFor_Number(t *testing.T) {
	config := ColumnConfigFor(notion.PropertyNumber, "total", "Total")
	if config.Align != AlignRight || config.Sorter != SorterNumber || config.Filter != FilterRange {
		t.Fatalf("number defaults: %+v", config)
	}
}

func TestColumnConfigFor_LinkSchemes(t *testing.T) {
	email := ColumnConfigFor(notion.PropertyEmail, "email", "Email")
	if email.FormatterParams["scheme"] != "mailto" {
		t.Fatalf("email params = %+v", email.FormatterParams)
	}
	phone := ColumnConfigFor(notion.PropertyPhoneNumber, "phone", "Phone")
	if phone.FormatterParams["scheme"] != "tel" {
		t.Fatalf("phone params = %+v", phone.FormatterParams)
	}
}

func TestColumnConfigFor_Deterministic(t *testing.T) {
	first := ColumnConfigFor(notion.PropertyDate, "due", "Due")
	second := ColumnConfigFor(notion.PropertyDate, "due", "Due")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("descriptor not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestColumnConfigFor_UnknownTypeGeneric(t *testing.T) {
	config := ColumnConfigFor(notion.PropertyType("verification"), "v", "V")
	if config.Formatter != FormatterText || config.Filter != FilterText {
		t.Fatalf("unknown type must get generic defaults: %+v", config)
	}
}

func TestColumnConfigFor_ParamsCopied(t *testing.T) {
	first := ColumnConfigFor(notion.PropertyEmail, "email", "Email")
	first.FormatterParams["scheme"] = "overwritten"

	second := ColumnConfigFor(notion.PropertyEmail, "email", "Email")
	if second.FormatterParams["scheme"] != "mailto" {
		t.Fatalf("shared params map mutated across calls: %+v", second.FormatterParams)
	}
}
