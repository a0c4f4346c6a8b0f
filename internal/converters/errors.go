package converters

import "errors"

var (
	// ErrRegistryFrozen indicates an attempt to register after Freeze.
	ErrRegistryFrozen = errors.New("converters: registry is frozen")
	// ErrInvalidConverter occurs when a registration lacks a type or converter.
	ErrInvalidConverter = errors.New("converters: invalid registration")
)
