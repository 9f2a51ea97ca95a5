package ocd

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestGridWorldConversion(t *testing.T) {
	// 1:10000, one grid unit is one metre
	p := GridToWorld(5555000, 4444000, 10000, Point{X: 10, Y: 100})
	if p.X() != 5555010 || p.Y() != 4444100 {
		t.Errorf("Expected (5555010,4444100), got (%f,%f)", p.X(), p.Y())
	}

	// 1:15000, one grid unit is 1.5 metres
	p = GridToWorld(0, 0, 15000, Point{X: 2, Y: -4})
	if math.Abs(p.X()-3) > 1e-9 || math.Abs(p.Y()+6) > 1e-9 {
		t.Errorf("Expected (3,-6), got (%f,%f)", p.X(), p.Y())
	}

	back := WorldToGrid(0, 0, 15000, orb.Point{3.4, -6.8})
	if back != (Point{X: 2, Y: -5}) {
		t.Errorf("Expected (2,-5), got %+v", back)
	}
}

func TestWriterFeatureCollection(t *testing.T) {
	w := newSampleWriter(t)
	fc, err := w.FeatureCollection()
	if err != nil {
		t.Fatalf("FeatureCollection failed: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(fc.Features))
	}

	f := fc.Features[0]
	poly, ok := f.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("Expected Polygon geometry, got %T", f.Geometry)
	}
	expected := orb.Ring{
		{5555010, 4444100},
		{5555100, 4444010},
		{5555100, 4444100},
		{5555010, 4444100},
	}
	if diff := cmp.Diff(expected, poly[0]); diff != "" {
		t.Errorf("Ring mismatch (-want +got):\n%s", diff)
	}

	if f.Properties[PropSymbolCode] != 4010 {
		t.Errorf("Expected symbol_code 4010, got %v", f.Properties[PropSymbolCode])
	}
	if f.Properties[PropSymbol] != "401.0" {
		t.Errorf("Expected symbol '401.0', got %v", f.Properties[PropSymbol])
	}
	if f.Properties[PropSymbolName] != "symtwo" {
		t.Errorf("Expected symbol_name 'symtwo', got %v", f.Properties[PropSymbolName])
	}
	if f.Properties[PropColor] != "some color" {
		t.Errorf("Expected color 'some color', got %v", f.Properties[PropColor])
	}

	bbox := fc.BBox.Bound()
	if bbox.Min != (orb.Point{5555010, 4444010}) || bbox.Max != (orb.Point{5555100, 4444100}) {
		t.Errorf("Unexpected bbox %v", fc.BBox)
	}
}

// TestFeatureCollectionUnregisteredCode tests that objects without a symbol
// carry only their code
func TestFeatureCollectionUnregisteredCode(t *testing.T) {
	w := NewWriter(0, 0, 10000)
	if err := w.ExportArea(triangle, 9999); err != nil {
		t.Fatalf("ExportArea failed: %v", err)
	}
	fc, err := w.FeatureCollection()
	if err != nil {
		t.Fatalf("FeatureCollection failed: %v", err)
	}
	props := fc.Features[0].Properties
	if _, ok := props[PropSymbolName]; ok {
		t.Error("Expected no symbol_name for unregistered code")
	}
	if props[PropSymbol] != "999.9" {
		t.Errorf("Expected symbol '999.9', got %v", props[PropSymbol])
	}
}

// TestImportFeatureCollection tests importing GeoJSON text
func TestImportFeatureCollection(t *testing.T) {
	raw := []byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {
	      "type": "Feature",
	      "properties": {"symbol_code": 3010, "symbol_name": "lake", "color": "blue"},
	      "geometry": {"type": "Polygon", "coordinates": [[[100, 200], [150, 200], [150, 260], [100, 200]]]}
	    },
	    {
	      "type": "Feature",
	      "properties": {"symbol_code": 3010, "symbol_name": "lake", "color": "blue"},
	      "geometry": {"type": "MultiPolygon", "coordinates": [
	        [[[0, 0], [10, 0], [10, 10], [0, 0]]],
	        [[[20, 20], [30, 20], [20, 20]]]
	      ]}
	    },
	    {
	      "type": "Feature",
	      "properties": {"symbol_name": "open land"},
	      "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [5, 0], [5, 5], [0, 5], [0, 0]]]}
	    },
	    {
	      "type": "Feature",
	      "properties": {},
	      "geometry": {"type": "Point", "coordinates": [1, 2]}
	    }
	  ]
	}`)
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		t.Fatalf("UnmarshalFeatureCollection failed: %v", err)
	}

	w := NewWriter(100, 200, 10000)
	stats, err := ImportFeatureCollection(w, fc, ImportOptions{DefaultCode: 4010})
	if err != nil {
		t.Fatalf("ImportFeatureCollection failed: %v", err)
	}

	expected := ImportStats{Objects: 3, Colors: 2, Symbols: 2, Skipped: 2}
	if stats != expected {
		t.Errorf("Expected stats %+v, got %+v", expected, stats)
	}

	colors := w.Colors()
	if len(colors) != 2 || colors[0].Name != "blue" || colors[1].Name != "black" {
		t.Errorf("Unexpected colors %+v", colors)
	}

	objects := w.Objects()
	if len(objects) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(objects))
	}
	lake := []Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 60}}
	if diff := cmp.Diff(lake, []Point(objects[0].Polygon)); diff != "" {
		t.Errorf("Lake polygon mismatch (-want +got):\n%s", diff)
	}
	if objects[2].Code != 4010 {
		t.Errorf("Expected default code 4010, got %d", objects[2].Code)
	}
	if len(objects[2].Polygon) != 4 {
		t.Errorf("Expected closing position dropped, got %d points", len(objects[2].Polygon))
	}
}

// TestGeoJSONRoundTrip tests that exported features import to the same objects
// TestImportSkipsInvalidSymbolCode tests that symbol codes which are not
// whole int32 values skip the feature instead of being converted
func TestImportSkipsInvalidSymbolCode(t *testing.T) {
	square := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	fc := geojson.NewFeatureCollection()
	for _, code := range []any{401.5, 1e12, -3e9, math.Inf(1), math.NaN(), "4010", 4010.0, 3010} {
		f := geojson.NewFeature(square)
		f.Properties[PropSymbolCode] = code
		fc.Append(f)
	}

	w := NewWriter(0, 0, 10000)
	stats, err := ImportFeatureCollection(w, fc, ImportOptions{DefaultCode: 1000})
	if err != nil {
		t.Fatalf("ImportFeatureCollection failed: %v", err)
	}
	expected := ImportStats{Objects: 2, Skipped: 6}
	if stats != expected {
		t.Errorf("Expected stats %+v, got %+v", expected, stats)
	}

	var codes []SymbolCode
	for _, o := range w.Objects() {
		codes = append(codes, o.Code)
	}
	if diff := cmp.Diff([]SymbolCode{4010, 3010}, codes); diff != "" {
		t.Errorf("Imported codes mismatch (-want +got):\n%s", diff)
	}
}

func TestGeoJSONRoundTrip(t *testing.T) {
	src := newSampleWriter(t)
	fc, err := src.FeatureCollection()
	if err != nil {
		t.Fatalf("FeatureCollection failed: %v", err)
	}
	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	decoded, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	x, y := src.Origin()
	dst := NewWriter(x, y, src.Scale())
	if _, err := ImportFeatureCollection(dst, decoded, ImportOptions{}); err != nil {
		t.Fatalf("ImportFeatureCollection failed: %v", err)
	}
	if diff := cmp.Diff(src.Objects(), dst.Objects()); diff != "" {
		t.Errorf("Objects mismatch (-want +got):\n%s", diff)
	}
}

func TestMapFileFeatureCollection(t *testing.T) {
	data, err := newSampleWriter(t).Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	fc := f.FeatureCollection()
	if len(fc.Features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties[PropSymbolName] != "symtwo" {
		t.Errorf("Expected symbol_name 'symtwo', got %v", fc.Features[0].Properties[PropSymbolName])
	}
}
