package notionconvert

import (
	"strings"

	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Config carries construction-time settings for the engine. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// MaxDepth bounds recursion into nested blocks. Exceeding it truncates
	// with a visible placeholder instead of recursing unboundedly.
	MaxDepth int

	// Locale drives date and number formatting, as a BCP 47 tag.
	Locale string

	// StrictDecode validates block envelopes against the JSON schema before
	// decoding. Off by default: malformed payloads then degrade to fallback
	// placeholders instead of failing the decode.
	StrictDecode bool

	Logging LoggingConfig
}

// LoggingConfig wires an optional logger provider. Level and Format document
// the host's intent for providers constructed from this config; a nil
// Provider keeps the engine silent.
type LoggingConfig struct {
	Provider interfaces.LoggerProvider
	Level    string
	Format   string
}

// DefaultConfig returns the settings a typical embedding starts from.
func DefaultConfig() Config {
	return Config{
		MaxDepth: 16,
		Locale:   "en",
	}
}

// Validate checks invariants the engine relies on.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return ErrMaxDepthInvalid
	}
	if strings.TrimSpace(c.Locale) == "" {
		return ErrLocaleRequired
	}
	return nil
}
