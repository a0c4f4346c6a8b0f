package notionconvert

import (
	"errors"

	"github.com/goliatone/go-notion-convert/internal/converters"
	"github.com/goliatone/go-notion-convert/notion"
)

var (
	// ErrMaxDepthInvalid indicates a non-positive recursion guard.
	ErrMaxDepthInvalid = errors.New("notionconvert: max depth must be positive")
	// ErrLocaleRequired indicates a missing formatting locale.
	ErrLocaleRequired = errors.New("notionconvert: locale is required")
)

// Registry errors re-exported for hosts registering custom converters.
var (
	ErrRegistryFrozen   = converters.ErrRegistryFrozen
	ErrInvalidConverter = converters.ErrInvalidConverter
)

// ErrEnvelopeInvalid surfaces strict-decode validation failures.
var ErrEnvelopeInvalid = notion.ErrEnvelopeInvalid
