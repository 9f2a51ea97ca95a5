package ocd

import (
	"github.com/beetlebugorg/ocd/internal/ocad"
)

// Point is a grid coordinate. One grid unit is 0.1 mm on paper.
type Point = ocad.Point

// Rect is an axis-aligned bounding box in grid units, inclusive on all edges.
type Rect = ocad.Rect

// CMYK holds process color percentages, each 0..100.
type CMYK = ocad.CMYK

// SymbolCode is a symbol's classification number in tenths (4100 is "410.0").
type SymbolCode = ocad.SymbolCode

// Color is a registered color. Index is its positional handle.
type Color = ocad.Color

// AreaSymbol is a registered area symbol. Color is the positional index of
// the referenced color.
type AreaSymbol = ocad.AreaSymbol

// AreaObject is an exported polygon with its bare symbol code.
type AreaObject = ocad.AreaObject

// Error types returned by this package. Use errors.As to inspect them.
type (
	ErrInvalidHandle      = ocad.ErrInvalidHandle
	ErrUnknownColor       = ocad.ErrUnknownColor
	ErrDegenerateGeometry = ocad.ErrDegenerateGeometry
	ErrInvalidName        = ocad.ErrInvalidName
	ErrIO                 = ocad.ErrIO
	ErrCorruptFile        = ocad.ErrCorruptFile
)

var defaultCMYK = ocad.DefaultCMYK
