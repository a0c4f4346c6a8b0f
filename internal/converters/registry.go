// Package converters implements the block conversion pipeline: a registry of
// per-type converters, list grouping of sibling items, depth guarding, and the
// visible fallback for anything unknown.
package converters

import (
	"sort"
	"sync"

	"github.com/goliatone/go-notion-convert/notion"
	"github.com/goliatone/go-notion-convert/pkg/interfaces"
)

// Registry is the thread-safe implementation of interfaces.ConverterRegistry.
// It is mutable during wiring and immutable after Freeze; conversion never
// mutates it, so frozen registries are safe for concurrent use without locks
// on the read path beyond the RWMutex.
type Registry struct {
	mu       sync.RWMutex
	entries  map[notion.BlockType]registration
	fallback interfaces.BlockConverter
	frozen   bool
}

type registration struct {
	converter interfaces.BlockConverter
	priority  int
}

// NewRegistry constructs an empty registry with the placeholder fallback.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[notion.BlockType]registration),
		fallback: &fallbackConverter{},
	}
}

// Register stores a converter for a block type. When the type already has a
// converter, the higher priority wins; equal priority replaces, so later
// registrations at the same priority act as overrides.
func (r *Registry) Register(blockType notion.BlockType, converter interfaces.BlockConverter, priority int) error {
	if blockType == "" || converter == nil {
		return ErrInvalidConverter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}

	if existing, ok := r.entries[blockType]; ok && existing.priority > priority {
		return nil
	}
	r.entries[blockType] = registration{converter: converter, priority: priority}
	return nil
}

// Resolve returns the converter for the type, or the fallback when none is
// registered or the registered converter declines the type. Never nil.
func (r *Registry) Resolve(blockType notion.BlockType) interfaces.BlockConverter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.entries[blockType]; ok && entry.converter.Supports(blockType) {
		return entry.converter
	}
	return r.fallback
}

// Types returns the registered block types in sorted order.
func (r *Registry) Types() []notion.BlockType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]notion.BlockType, 0, len(r.entries))
	for blockType := range r.entries {
		types = append(types, blockType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Freeze makes the registry immutable. Idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

var _ interfaces.ConverterRegistry = (*Registry)(nil)
