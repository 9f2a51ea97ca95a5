package ocad

import (
	"fmt"
)

// ErrInvalidHandle indicates a writer, color or symbol reference that is
// unknown, zero, or was already released.
type ErrInvalidHandle struct {
	Kind   string // "writer", "color", "symbol"
	Handle uint64
}

func (e *ErrInvalidHandle) Error() string {
	return fmt.Sprintf("invalid %s handle: %d", e.Kind, e.Handle)
}

// ErrUnknownColor indicates a symbol registration referencing a color that is
// not registered in the same writer.
type ErrUnknownColor struct {
	Color int
}

func (e *ErrUnknownColor) Error() string {
	return fmt.Sprintf("unknown color: %d", e.Color)
}

// ErrDegenerateGeometry indicates an area export with fewer than 3 points,
// or a point count larger than the supplied point list.
type ErrDegenerateGeometry struct {
	Count     int
	Available int
}

func (e *ErrDegenerateGeometry) Error() string {
	if e.Count > e.Available {
		return fmt.Sprintf("degenerate geometry: count %d exceeds %d supplied points", e.Count, e.Available)
	}
	return fmt.Sprintf("degenerate geometry: area needs at least %d points, got %d", MinAreaPoints, e.Count)
}

// ErrInvalidName indicates a color or symbol name that cannot be stored as a
// name field without loss.
type ErrInvalidName struct {
	Name   string
	Reason string
}

func (e *ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid name %q: %s", e.Name, e.Reason)
}

// ErrIO indicates a map file could not be created, written or read.
type ErrIO struct {
	Op   string // "create", "write", "close", "read"
	Path string // empty for streams
	Err  error
}

func (e *ErrIO) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrIO) Unwrap() error {
	return e.Err
}

// ErrCorruptFile indicates map data that does not match the file layout.
type ErrCorruptFile struct {
	Offset int
	Reason string
}

func (e *ErrCorruptFile) Error() string {
	return fmt.Sprintf("corrupt map file at offset %d: %s", e.Offset, e.Reason)
}
