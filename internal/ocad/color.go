package ocad

// CMYK holds process color percentages, each 0..100.
type CMYK struct {
	C, M, Y, K uint8
}

// DefaultCMYK is assigned to colors registered without explicit values.
var DefaultCMYK = CMYK{C: 100, M: 100, Y: 100, K: 100}

// Color is one entry of the color table. Index is the positional,
// 0-based registration order and doubles as the on-disk reference.
type Color struct {
	Index int
	Name  string
	CMYK  CMYK
}

// ColorTable is the ordered registry of colors.
type ColorTable struct {
	colors []Color
}

// Add appends a color and returns its positional index.
// Duplicate names are allowed and yield distinct entries.
func (t *ColorTable) Add(name string, cmyk CMYK) (int, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	cmyk = CMYK{
		C: min(cmyk.C, 100),
		M: min(cmyk.M, 100),
		Y: min(cmyk.Y, 100),
		K: min(cmyk.K, 100),
	}

	idx := len(t.colors)
	t.colors = append(t.colors, Color{Index: idx, Name: name, CMYK: cmyk})
	return idx, nil
}

// Has reports whether idx refers to a registered color.
func (t *ColorTable) Has(idx int) bool {
	return idx >= 0 && idx < len(t.colors)
}

// At returns the color at idx. It panics if idx is out of range, like a slice.
func (t *ColorTable) At(idx int) Color {
	return t.colors[idx]
}

// Len returns the number of registered colors.
func (t *ColorTable) Len() int {
	return len(t.colors)
}

// All returns a copy of the colors in registration order.
func (t *ColorTable) All() []Color {
	out := make([]Color, len(t.colors))
	copy(out, t.colors)
	return out
}
