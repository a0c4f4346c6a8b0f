package notion

import (
	"encoding/json"
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const (
	decodeFailedCode   = "NOTION_DECODE_FAILED"
	envelopeInvalidKey = "NOTION_ENVELOPE_INVALID"
)

var errMissingTypeTag = errors.New("notion: missing type tag")

// NormalizeID canonicalizes an upstream identifier. The API emits both dashed
// UUIDs and bare 32-hex forms; both normalize to the dashed lower-case form.
// Unparseable input is returned unchanged so decoding stays non-fatal.
func NormalizeID(id string) string {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ""
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	return parsed.String()
}

// DecodeBlocks parses an upstream-shaped JSON array (or an object with a
// "results" list) into a block tree. Child blocks may appear either as a
// top-level "children" array or nested inside the typed payload.
func DecodeBlocks(data []byte) ([]Block, error) {
	payload := strings.TrimSpace(string(data))
	if payload == "" {
		return nil, nil
	}

	var raws []json.RawMessage
	if strings.HasPrefix(payload, "{") {
		var envelope struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, decodeError(err)
		}
		raws = envelope.Results
	} else if err := json.Unmarshal(data, &raws); err != nil {
		return nil, decodeError(err)
	}

	blocks := make([]Block, 0, len(raws))
	for _, raw := range raws {
		block, err := decodeBlock(raw)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func decodeError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "notion: block payload decode failed").
		WithTextCode(decodeFailedCode)
}

func decodeBlock(raw json.RawMessage) (Block, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Block{}, decodeError(err)
	}

	block := Block{
		ID:   NormalizeID(stringField(fields, "id")),
		Type: BlockType(stringField(fields, "type")),
	}
	if block.Type == "" {
		block.Type = BlockUnsupported
	}

	if rawVal, ok := fields["has_children"]; ok {
		_ = json.Unmarshal(rawVal, &block.HasChildren)
	}

	payload := map[string]json.RawMessage{}
	if rawPayload, ok := fields[string(block.Type)]; ok {
		_ = json.Unmarshal(rawPayload, &payload)
	}

	if err := decodePayload(&block, payload); err != nil {
		return Block{}, err
	}

	children := fields["children"]
	if children == nil {
		children = payload["children"]
	}
	if children != nil {
		var rawChildren []json.RawMessage
		if err := json.Unmarshal(children, &rawChildren); err != nil {
			return Block{}, decodeError(err)
		}
		for _, rawChild := range rawChildren {
			child, err := decodeBlock(rawChild)
			if err != nil {
				return Block{}, err
			}
			block.Children = append(block.Children, child)
		}
		if len(block.Children) > 0 {
			block.HasChildren = true
		}
	}

	return block, nil
}

func decodePayload(block *Block, payload map[string]json.RawMessage) error {
	switch block.Type {
	case BlockParagraph, BlockHeading1, BlockHeading2, BlockHeading3,
		BlockQuote, BlockBulletedListItem, BlockNumberedListItem, BlockToggle:
		block.Text = &TextPayload{
			RichText: decodeRichTextField(payload, "rich_text"),
			Color:    jsonString(payload["color"]),
		}
	case BlockToDo:
		todo := &TodoPayload{RichText: decodeRichTextField(payload, "rich_text")}
		if raw, ok := payload["checked"]; ok {
			_ = json.Unmarshal(raw, &todo.Checked)
		}
		block.Todo = todo
	case BlockCallout:
		block.Callout = &CalloutPayload{
			RichText: decodeRichTextField(payload, "rich_text"),
			Icon:     decodeIcon(payload["icon"]),
			Color:    jsonString(payload["color"]),
		}
	case BlockCode:
		block.Code = &CodePayload{
			RichText: decodeRichTextField(payload, "rich_text"),
			Caption:  decodeRichTextField(payload, "caption"),
			Language: jsonString(payload["language"]),
		}
	case BlockTable:
		table := &TablePayload{}
		if raw, ok := payload["table_width"]; ok {
			_ = json.Unmarshal(raw, &table.Width)
		}
		if raw, ok := payload["has_column_header"]; ok {
			_ = json.Unmarshal(raw, &table.HasColumnHeader)
		}
		if raw, ok := payload["has_row_header"]; ok {
			_ = json.Unmarshal(raw, &table.HasRowHeader)
		}
		block.Table = table
	case BlockTableRow:
		row := &TableRowPayload{}
		if raw, ok := payload["cells"]; ok {
			var cells []json.RawMessage
			if err := json.Unmarshal(raw, &cells); err != nil {
				return decodeError(err)
			}
			for _, cell := range cells {
				row.Cells = append(row.Cells, decodeRichTextRaw(cell))
			}
		}
		block.TableRow = row
	case BlockImage, BlockFile, BlockVideo, BlockPDF, BlockAudio,
		BlockBookmark, BlockEmbed, BlockLinkPreview:
		block.Media = &MediaPayload{
			Ref:     decodeResourceRef(payload),
			Caption: decodeRichTextField(payload, "caption"),
		}
	case BlockEquation:
		block.Equation = &EquationPayload{Expression: jsonString(payload["expression"])}
	case BlockChildPage, BlockChildDatabase:
		block.Child = &ChildPayload{Title: jsonString(payload["title"])}
	case BlockDivider, BlockColumnList, BlockColumn, BlockSyncedBlock,
		BlockTemplate, BlockBreadcrumb, BlockTableOfContents, BlockUnsupported:
		// structural or payload-free variants
	default:
		// keep the tag; the fallback converter surfaces it
	}
	return nil
}

// decodeResourceRef handles both the hosted ("file") and external shapes as
// well as a flat {url,name} form produced by collaborators that pre-resolve
// media.
func decodeResourceRef(payload map[string]json.RawMessage) ResourceRef {
	ref := ResourceRef{
		URL:  jsonString(payload["url"]),
		Name: jsonString(payload["name"]),
	}
	for _, key := range []string{"external", "file"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var nested struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && nested.URL != "" && ref.URL == "" {
			ref.URL = nested.URL
		}
	}
	return ref
}

func decodeIcon(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var icon struct {
		Emoji    string `json:"emoji"`
		External struct {
			URL string `json:"url"`
		} `json:"external"`
	}
	if err := json.Unmarshal(raw, &icon); err != nil {
		return ""
	}
	if icon.Emoji != "" {
		return icon.Emoji
	}
	return icon.External.URL
}

func decodeRichTextField(payload map[string]json.RawMessage, key string) []RichText {
	raw, ok := payload[key]
	if !ok {
		// older exports used "text" for the run list
		raw = payload["text"]
	}
	return decodeRichTextRaw(raw)
}

func decodeRichTextRaw(raw json.RawMessage) []RichText {
	if raw == nil {
		return nil
	}
	var entries []struct {
		Type string `json:"type"`
		Text struct {
			Content string `json:"content"`
			Link    *struct {
				URL string `json:"url"`
			} `json:"link"`
		} `json:"text"`
		Annotations Annotations `json:"annotations"`
		PlainText   string      `json:"plain_text"`
		Href        string      `json:"href"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	runs := make([]RichText, 0, len(entries))
	for _, entry := range entries {
		run := RichText{
			PlainText:   entry.PlainText,
			Href:        entry.Href,
			Annotations: entry.Annotations,
		}
		if run.PlainText == "" {
			run.PlainText = entry.Text.Content
		}
		if run.Href == "" && entry.Text.Link != nil {
			run.Href = entry.Text.Link.URL
		}
		runs = append(runs, run)
	}
	return runs
}

func stringField(fields map[string]json.RawMessage, key string) string {
	return jsonString(fields[key])
}

func jsonString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// DecodeProperty parses one upstream-shaped property value object, e.g.
// {"type":"select","select":{"name":"Done","color":"green"}}.
func DecodeProperty(data []byte) (PropertyValue, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return PropertyValue{}, decodeError(err)
	}

	prop := PropertyValue{Type: PropertyType(stringField(fields, "type"))}
	payload := fields[string(prop.Type)]

	switch prop.Type {
	case PropertyTitle, PropertyRichText, PropertyText:
		prop.RichText = decodeRichTextRaw(payload)
	case PropertyNumber:
		prop.Number = decodeNumber(payload)
	case PropertySelect:
		prop.Select = decodeSelect(payload)
	case PropertyMultiSelect:
		_ = json.Unmarshal(payload, &prop.MultiSelect)
	case PropertyStatus:
		prop.Status = decodeSelect(payload)
	case PropertyCheckbox:
		var checked bool
		if payload != nil && json.Unmarshal(payload, &checked) == nil {
			prop.Checkbox = &checked
		}
	case PropertyDate:
		prop.Date = decodeDate(payload)
	case PropertyCreatedTime, PropertyLastEditedTime:
		prop.Timestamp = jsonString(payload)
	case PropertyRelation:
		var entries []struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(payload, &entries) == nil {
			for _, entry := range entries {
				prop.Relation = append(prop.Relation, NormalizeID(entry.ID))
			}
		}
	case PropertyRollup:
		prop.Rollup = decodeRollup(payload)
	case PropertyFormula:
		prop.Formula = decodeFormula(payload)
	case PropertyFiles:
		prop.Files = decodeFiles(payload)
	case PropertyURL:
		prop.URL = optionalString(payload)
	case PropertyEmail:
		prop.Email = optionalString(payload)
	case PropertyPhoneNumber:
		prop.PhoneNumber = optionalString(payload)
	case PropertyPeople:
		var users []json.RawMessage
		if json.Unmarshal(payload, &users) == nil {
			for _, raw := range users {
				prop.People = append(prop.People, decodeUser(raw))
			}
		}
	case PropertyCreatedBy, PropertyLastEditedBy:
		if payload != nil {
			user := decodeUser(payload)
			prop.User = &user
		}
	default:
		var raw any
		if payload != nil && json.Unmarshal(payload, &raw) == nil {
			prop.Raw = raw
		}
		if prop.Type == "" {
			return prop, goerrors.Wrap(errMissingTypeTag, goerrors.CategoryValidation, "notion: property value missing type tag").
				WithTextCode(envelopeInvalidKey)
		}
	}

	return prop, nil
}

func decodeNumber(raw json.RawMessage) *float64 {
	if raw == nil {
		return nil
	}
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return &value
}

func decodeSelect(raw json.RawMessage) *SelectOption {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var option SelectOption
	if err := json.Unmarshal(raw, &option); err != nil {
		return nil
	}
	return &option
}

func decodeDate(raw json.RawMessage) *DateValue {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var date DateValue
	if err := json.Unmarshal(raw, &date); err != nil {
		return nil
	}
	return &date
}

func decodeRollup(raw json.RawMessage) *RollupValue {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	rollup := &RollupValue{Type: stringField(fields, "type")}
	switch rollup.Type {
	case "number":
		rollup.Number = decodeNumber(fields["number"])
	case "date":
		rollup.Date = decodeDate(fields["date"])
	case "string":
		rollup.String = optionalString(fields["string"])
	case "boolean":
		var value bool
		if json.Unmarshal(fields["boolean"], &value) == nil {
			rollup.Bool = &value
		}
	case "array":
		var entries []json.RawMessage
		if json.Unmarshal(fields["array"], &entries) == nil {
			for _, entry := range entries {
				if inner, err := DecodeProperty(entry); err == nil {
					rollup.Array = append(rollup.Array, inner)
				}
			}
		}
	}
	return rollup
}

func decodeFormula(raw json.RawMessage) *FormulaValue {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	formula := &FormulaValue{Type: stringField(fields, "type")}
	switch formula.Type {
	case "number":
		formula.Number = decodeNumber(fields["number"])
	case "date":
		formula.Date = decodeDate(fields["date"])
	case "string":
		formula.String = optionalString(fields["string"])
	case "boolean":
		var value bool
		if json.Unmarshal(fields["boolean"], &value) == nil {
			formula.Bool = &value
		}
	}
	return formula
}

func decodeFiles(raw json.RawMessage) []FileValue {
	var entries []map[string]json.RawMessage
	if raw == nil || json.Unmarshal(raw, &entries) != nil {
		return nil
	}
	files := make([]FileValue, 0, len(entries))
	for _, entry := range entries {
		file := FileValue{Name: jsonString(entry["name"])}
		ref := decodeResourceRef(entry)
		file.URL = ref.URL
		if file.Name == "" {
			file.Name = ref.Name
		}
		files = append(files, file)
	}
	return files
}

func decodeUser(raw json.RawMessage) User {
	var user struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	_ = json.Unmarshal(raw, &user)
	return User{ID: NormalizeID(user.ID), Name: user.Name, AvatarURL: user.AvatarURL}
}

func optionalString(raw json.RawMessage) *string {
	if raw == nil || string(raw) == "null" {
		return nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return &value
}
