package ocad

import "math"

// GridUnitMM is the paper size of one grid unit in millimetres.
//
// At map scale 1:S one grid unit covers S * GridUnitMM / 1000 metres on the
// ground, so at 1:10000 a grid unit is exactly one metre.
const GridUnitMM = 0.1

// MinAreaPoints is the smallest point count of a closed area.
const MinAreaPoints = 3

// Point is a coordinate pair in grid units.
// Wire form: two little-endian int32 values, x first.
type Point struct {
	X, Y int32
}

// Polygon is an implicitly closed ring: the last point connects to the first.
// Self-intersection is not checked.
type Polygon []Point

// Rect is an axis-aligned bounding box in grid units, inclusive on all edges.
type Rect struct {
	MinX, MinY int32
	MaxX, MaxY int32
}

// BoundsOf returns the bounding box of points.
// The zero Rect is returned for an empty slice.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// Bounds returns the polygon's bounding box.
func (p Polygon) Bounds() Rect {
	return BoundsOf(p)
}

// Union returns the smallest Rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// Intersects reports whether r and other share at least one point.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX <= other.MaxX && other.MinX <= r.MaxX &&
		r.MinY <= other.MaxY && other.MinY <= r.MaxY
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width returns the horizontal extent in grid units.
func (r Rect) Width() int64 {
	return int64(r.MaxX) - int64(r.MinX)
}

// Height returns the vertical extent in grid units.
func (r Rect) Height() int64 {
	return int64(r.MaxY) - int64(r.MinY)
}

// MetresPerGridUnit returns the ground distance of one grid unit at scale.
func MetresPerGridUnit(scale float64) float64 {
	return scale * GridUnitMM / 1000
}

// GridToWorld converts p to real-world coordinates relative to the origin.
func GridToWorld(originX, originY, scale float64, p Point) (x, y float64) {
	m := MetresPerGridUnit(scale)
	return originX + float64(p.X)*m, originY + float64(p.Y)*m
}

// WorldToGrid converts real-world coordinates to the nearest grid point.
// Values outside the int32 range are clamped.
func WorldToGrid(originX, originY, scale float64, x, y float64) Point {
	m := MetresPerGridUnit(scale)
	if m == 0 {
		return Point{}
	}
	return Point{
		X: clampInt32(math.Round((x - originX) / m)),
		Y: clampInt32(math.Round((y - originY) / m)),
	}
}

func clampInt32(v float64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
