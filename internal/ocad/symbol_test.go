package ocad

import (
	"errors"
	"testing"
)

func TestSymbolCodeString(t *testing.T) {
	tests := []struct {
		code     SymbolCode
		expected string
	}{
		{4100, "410.0"},
		{4010, "401.0"},
		{4015, "401.5"},
		{0, "0.0"},
		{7, "0.7"},
		{-5, "-0.5"},
		{-4101, "-410.1"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.code.String(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// TestColorIndicesArePositional tests that color indices follow call order
func TestColorIndicesArePositional(t *testing.T) {
	var colors ColorTable
	names := []string{"black", "blue", "black", "yellow"}
	for i, name := range names {
		idx, err := colors.Add(name, DefaultCMYK)
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
		if idx != i {
			t.Errorf("Expected index %d, got %d", i, idx)
		}
	}
	if colors.Len() != len(names) {
		t.Errorf("Expected %d colors, got %d", len(names), colors.Len())
	}
	if colors.At(2).Name != "black" || colors.At(2).Index != 2 {
		t.Errorf("Unexpected color at 2: %+v", colors.At(2))
	}
}

func TestColorCMYKClamped(t *testing.T) {
	var colors ColorTable
	idx, err := colors.Add("bright", CMYK{C: 250, M: 50, Y: 101, K: 0})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got := colors.At(idx).CMYK
	expected := CMYK{C: 100, M: 50, Y: 100, K: 0}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestSymbolTable(t *testing.T) {
	m := NewMap(0, 0, 10000)
	color, err := m.AddColor("green")
	if err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}

	first, err := m.AddAreaSymbol("forest", 4100, color)
	if err != nil {
		t.Fatalf("AddAreaSymbol failed: %v", err)
	}
	second, err := m.AddAreaSymbol("forest, slow run", 4100, color)
	if err != nil {
		t.Fatalf("Duplicate code should be allowed: %v", err)
	}
	if first != 0 || second != 1 {
		t.Errorf("Expected indices 0 and 1, got %d and %d", first, second)
	}

	shared := m.Symbols.Lookup(4100)
	if len(shared) != 2 {
		t.Fatalf("Expected 2 symbols with code 4100, got %d", len(shared))
	}
	if shared[0].Name != "forest" || shared[1].Name != "forest, slow run" {
		t.Errorf("Lookup order not preserved: %+v", shared)
	}
	if len(m.Symbols.Lookup(9999)) != 0 {
		t.Error("Expected no symbols for unregistered code")
	}

	_, err = m.AddAreaSymbol("orphan", 4200, 5)
	var unknown *ErrUnknownColor
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected ErrUnknownColor, got %v", err)
	}
	if unknown.Color != 5 {
		t.Errorf("Expected color 5 in error, got %d", unknown.Color)
	}
	if m.Symbols.Len() != 2 {
		t.Errorf("Failed registration must not add a symbol, have %d", m.Symbols.Len())
	}

	if _, err := m.AddAreaSymbol("negative", 4200, -1); err == nil {
		t.Error("Expected error for negative color index")
	}
}

// TestObjectStoreNoMutationOnError tests that failed exports leave the store
// unchanged
func TestObjectStoreNoMutationOnError(t *testing.T) {
	var store ObjectStore
	points := []Point{{0, 0}, {10, 0}, {0, 10}}

	if err := store.Add(points, 3, 4010); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	for _, count := range []int{0, 1, 2, 4} {
		if err := store.Add(points, count, 4010); err == nil {
			t.Errorf("Expected error for count %d", count)
		}
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 object, got %d", store.Len())
	}

	// The store keeps its own copy
	points[0] = Point{99, 99}
	if store.At(0).Polygon[0] != (Point{0, 0}) {
		t.Error("Object polygon aliases caller slice")
	}

	bounds, ok := store.Bounds()
	if !ok {
		t.Fatal("Expected bounds for non-empty store")
	}
	if bounds != (Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}) {
		t.Errorf("Unexpected bounds %+v", bounds)
	}

	var empty ObjectStore
	if _, ok := empty.Bounds(); ok {
		t.Error("Expected no bounds for empty store")
	}
}
