package ocd

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/ocd/internal/ocad"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature property keys used by FeatureCollection and ImportFeatureCollection.
const (
	PropSymbolCode  = "symbol_code"  // numeric code, e.g. 4010
	PropSymbol      = "symbol"       // display form, e.g. "401.0"
	PropSymbolName  = "symbol_name"  // name of the first symbol with the code
	PropColor       = "color"        // name of that symbol's color
	PropObjectIndex = "object_index" // export order
)

// GridToWorld converts a grid point to real-world coordinates.
func GridToWorld(originX, originY, scale float64, p Point) orb.Point {
	x, y := ocad.GridToWorld(originX, originY, scale, p)
	return orb.Point{x, y}
}

// WorldToGrid converts real-world coordinates to the nearest grid point.
func WorldToGrid(originX, originY, scale float64, p orb.Point) Point {
	return ocad.WorldToGrid(originX, originY, scale, p.X(), p.Y())
}

// GridToWorld converts p using the Writer's origin and scale.
func (w *Writer) GridToWorld(p Point) orb.Point {
	x, y := w.Origin()
	return GridToWorld(x, y, w.Scale(), p)
}

// WorldToGrid converts p using the Writer's origin and scale.
func (w *Writer) WorldToGrid(p orb.Point) Point {
	x, y := w.Origin()
	return WorldToGrid(x, y, w.Scale(), p)
}

// FeatureCollection renders the Writer's objects as GeoJSON polygons in
// real-world coordinates.
func (w *Writer) FeatureCollection() (*geojson.FeatureCollection, error) {
	if err := w.check(); err != nil {
		return nil, err
	}
	x, y := w.Origin()
	return featureCollection(x, y, w.Scale(), w.Colors(), w.Symbols(), w.Objects()), nil
}

// FeatureCollection renders the file's objects as GeoJSON polygons in
// real-world coordinates.
func (f *MapFile) FeatureCollection() *geojson.FeatureCollection {
	x, y := f.Origin()
	return featureCollection(x, y, f.Scale(), f.Colors(), f.Symbols(), f.Objects())
}

func featureCollection(originX, originY, scale float64, colors []Color, symbols []AreaSymbol, objects []AreaObject) *geojson.FeatureCollection {
	// First symbol per code wins
	byCode := make(map[SymbolCode]AreaSymbol, len(symbols))
	for _, s := range symbols {
		if _, ok := byCode[s.Code]; !ok {
			byCode[s.Code] = s
		}
	}

	fc := geojson.NewFeatureCollection()
	var bound orb.Bound
	for i, obj := range objects {
		ring := make(orb.Ring, 0, len(obj.Polygon)+1)
		for _, p := range obj.Polygon {
			ring = append(ring, GridToWorld(originX, originY, scale, p))
		}
		// GeoJSON rings repeat the first position
		ring = append(ring, ring[0])

		if i == 0 {
			bound = ring.Bound()
		} else {
			bound = bound.Union(ring.Bound())
		}

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties[PropObjectIndex] = i
		feature.Properties[PropSymbolCode] = int(obj.Code)
		feature.Properties[PropSymbol] = obj.Code.String()
		if sym, ok := byCode[obj.Code]; ok {
			feature.Properties[PropSymbolName] = sym.Name
			if sym.Color >= 0 && sym.Color < len(colors) {
				feature.Properties[PropColor] = colors[sym.Color].Name
			}
		}
		fc.Append(feature)
	}
	if len(objects) > 0 {
		fc.BBox = geojson.NewBBox(bound)
	}
	return fc
}

// ImportOptions controls ImportFeatureCollection.
type ImportOptions struct {
	// DefaultCode is used for features without a symbol_code property.
	DefaultCode SymbolCode

	// DefaultColor names the color used for symbols whose feature has no
	// color property.
	// Default: "black"
	DefaultColor string
}

// ImportStats reports what ImportFeatureCollection did.
type ImportStats struct {
	Objects int // Areas exported
	Colors  int // Colors registered
	Symbols int // Symbols registered
	Skipped int // Features or rings that could not become areas
}

// ImportFeatureCollection exports every polygon in fc into w.
//
// Polygon and MultiPolygon features contribute their outer rings; holes and
// other geometry types are skipped. Coordinates are converted with the
// Writer's georeference. When a feature names a symbol (symbol_name) that
// has not been seen with its code, the symbol and its color (color) are
// registered first. Rings with fewer than three positions, not counting the
// closing one, are counted as skipped, as are features whose symbol_code is
// not a whole number in int32 range.
func ImportFeatureCollection(w *Writer, fc *geojson.FeatureCollection, opts ImportOptions) (ImportStats, error) {
	var stats ImportStats
	if err := w.check(); err != nil {
		return stats, err
	}
	if opts.DefaultColor == "" {
		opts.DefaultColor = "black"
	}

	colors := make(map[string]ColorHandle)
	type symbolKey struct {
		name string
		code SymbolCode
	}
	symbols := make(map[symbolKey]bool)

	for i, feature := range fc.Features {
		var rings []orb.Ring
		switch g := feature.Geometry.(type) {
		case orb.Polygon:
			if len(g) > 0 {
				rings = append(rings, g[0])
			}
		case orb.MultiPolygon:
			for _, poly := range g {
				if len(poly) > 0 {
					rings = append(rings, poly[0])
				}
			}
		}
		if len(rings) == 0 {
			stats.Skipped++
			continue
		}

		code, ok := symbolCodeProperty(feature.Properties, opts.DefaultCode)
		if !ok {
			stats.Skipped++
			continue
		}

		if name := feature.Properties.MustString(PropSymbolName, ""); name != "" {
			key := symbolKey{name: name, code: code}
			if !symbols[key] {
				colorName := feature.Properties.MustString(PropColor, opts.DefaultColor)
				color, ok := colors[colorName]
				if !ok {
					var err error
					color, err = w.AddColor(colorName)
					if err != nil {
						return stats, fmt.Errorf("feature %d: %w", i, err)
					}
					colors[colorName] = color
					stats.Colors++
				}
				if _, err := w.AddAreaSymbol(name, code, color); err != nil {
					return stats, fmt.Errorf("feature %d: %w", i, err)
				}
				symbols[key] = true
				stats.Symbols++
			}
		}

		for _, ring := range rings {
			points := ringToGrid(w, ring)
			if len(points) < ocad.MinAreaPoints {
				stats.Skipped++
				continue
			}
			if err := w.ExportArea(points, code); err != nil {
				return stats, fmt.Errorf("feature %d: %w", i, err)
			}
			stats.Objects++
		}
	}

	w.log.Debug("geojson_imported",
		"features", len(fc.Features),
		"objects", stats.Objects,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

// symbolCodeProperty reads symbol_code as decoded from JSON (float64) or as
// set by FeatureCollection (int). A missing property yields def. Values that
// are not whole numbers in int32 range are rejected.
func symbolCodeProperty(props geojson.Properties, def SymbolCode) (SymbolCode, bool) {
	raw, ok := props[PropSymbolCode]
	if !ok || raw == nil {
		return def, true
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return SymbolCode(v), true
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return SymbolCode(v), true
	case SymbolCode:
		return v, true
	}
	return 0, false
}

// ringToGrid converts a ring to grid points without the closing duplicate.
func ringToGrid(w *Writer, ring orb.Ring) []Point {
	if len(ring) > 1 && ring.Closed() {
		ring = ring[:len(ring)-1]
	}
	points := make([]Point, len(ring))
	for i, p := range ring {
		points[i] = w.WorldToGrid(p)
	}
	return points
}
