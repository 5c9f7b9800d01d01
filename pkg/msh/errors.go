// Package msh implements the MSH0 flat binary mesh format: a fixed-layout
// header, a self-describing attribute table, an embedded texture name, and
// an array of 36-byte vertex records.
package msh

import "errors"

// MSH format errors.
var (
	// Configuration errors, detected before any encoding work.
	ErrInvalidAxis  = errors.New("invalid axis: expected one of +X -X +Y -Y +Z -Z")
	ErrInvalidAxes  = errors.New("invalid axis pair: forward and up resolve to the same axis")
	ErrInvalidOrder = errors.New("invalid byte order: expected 'little' or 'big'")

	// Data errors, detected before any encoding work.
	ErrChannelMismatch = errors.New("channel length mismatch: UV/color arrays must match position count")
	ErrMeshTooLarge    = errors.New("mesh too large: sizes exceed uint32 range")

	// Reader errors.
	ErrInvalidMagic  = errors.New("invalid MSH magic: expected 'MSH0'")
	ErrTruncatedData = errors.New("truncated MSH data")
	ErrCorruptHeader = errors.New("corrupt MSH header")
)
