package notion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrEnvelopeInvalid wraps block-envelope validation failures raised by
// DecodeBlocksStrict.
var ErrEnvelopeInvalid = errors.New("notion: block envelope invalid")

// blockEnvelopeSchema describes the minimum shape the strict decoder accepts:
// every entry needs a type tag; ids and has_children are optional but typed.
const blockEnvelopeSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["type"],
		"properties": {
			"object": {"type": "string"},
			"id": {"type": "string"},
			"type": {"type": "string", "minLength": 1},
			"has_children": {"type": "boolean"},
			"children": {"type": "array"}
		}
	}
}`

var (
	envelopeSchemaOnce sync.Once
	envelopeSchema     *jsonschema.Schema
)

func compiledEnvelopeSchema() *jsonschema.Schema {
	envelopeSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("blocks.json", bytes.NewReader([]byte(blockEnvelopeSchema))); err != nil {
			panic(fmt.Sprintf("notion: envelope schema resource: %v", err))
		}
		envelopeSchema = compiler.MustCompile("blocks.json")
	})
	return envelopeSchema
}

// ValidateEnvelope checks a raw block array against the envelope schema
// without decoding it into the typed model.
func ValidateEnvelope(data []byte) error {
	payload := strings.TrimSpace(string(data))
	if payload == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrEnvelopeInvalid, err)
	}
	if wrapper, ok := decoded.(map[string]any); ok {
		results, ok := wrapper["results"]
		if !ok {
			return fmt.Errorf("%w: object form requires a results array", ErrEnvelopeInvalid)
		}
		decoded = results
	}

	if err := compiledEnvelopeSchema().Validate(decoded); err != nil {
		return fmt.Errorf("%w: %s", ErrEnvelopeInvalid, summarizeValidation(err))
	}
	return nil
}

// DecodeBlocksStrict validates the envelope before decoding. Use it at trust
// boundaries where malformed upstream payloads should fail loudly instead of
// degrading to fallback placeholders.
func DecodeBlocksStrict(data []byte) ([]Block, error) {
	if err := ValidateEnvelope(data); err != nil {
		return nil, err
	}
	return DecodeBlocks(data)
}

func summarizeValidation(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return err.Error()
	}

	parts := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return strings.Join(parts, "; ")
}
