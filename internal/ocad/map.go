package ocad

// Map is the in-memory model of one map file: the georeference recorded at
// creation plus the color table, symbol table and object store.
//
// A Map is not safe for concurrent use.
type Map struct {
	OriginX float64 // Real-world X of grid point (0,0)
	OriginY float64 // Real-world Y of grid point (0,0)
	Scale   float64 // Map scale denominator, e.g. 10000 for 1:10000

	Colors  ColorTable
	Symbols SymbolTable
	Objects ObjectStore
}

// NewMap returns an empty map. The origin and scale are stored verbatim.
func NewMap(originX, originY, scale float64) *Map {
	return &Map{
		OriginX: originX,
		OriginY: originY,
		Scale:   scale,
	}
}

// AddColor registers a color with the default CMYK values.
func (m *Map) AddColor(name string) (int, error) {
	return m.Colors.Add(name, DefaultCMYK)
}

// AddAreaSymbol registers an area symbol referencing a color of this map.
func (m *Map) AddAreaSymbol(name string, code SymbolCode, color int) (int, error) {
	return m.Symbols.Add(name, code, color, &m.Colors)
}

// ExportArea appends an area object built from the first count points.
func (m *Map) ExportArea(points []Point, count int, code SymbolCode) error {
	return m.Objects.Add(points, count, code)
}

// Reset drops all colors, symbols and objects.
func (m *Map) Reset() {
	m.Colors = ColorTable{}
	m.Symbols = SymbolTable{}
	m.Objects = ObjectStore{}
}
