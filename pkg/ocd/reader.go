package ocd

import (
	"io"
	"os"

	"github.com/beetlebugorg/ocd/internal/ocad"
)

// MapFile is a decoded map file written by this package.
type MapFile struct {
	file *ocad.File
}

// Section locates one section inside a file.
type Section struct {
	Offset uint32
	Size   uint32
}

// Layout describes where each section of a file lives.
type Layout struct {
	Colors       Section
	Symbols      Section
	Objects      Section
	FooterOffset uint32
	Checksum     uint64
}

// ReadFile reads and decodes the map file at path.
//
// Example:
//
//	f, err := ocd.ReadFile("map.ocd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d objects at 1:%g\n", f.ObjectCount(), f.Scale())
func ReadFile(path string) (*MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrIO{Op: "read", Path: path, Err: err}
	}
	return Decode(data)
}

// Read reads a whole map file from r and decodes it.
func Read(r io.Reader) (*MapFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrIO{Op: "read", Err: err}
	}
	return Decode(data)
}

// Decode decodes map file bytes. Structural problems yield *ErrCorruptFile.
func Decode(data []byte) (*MapFile, error) {
	f, err := ocad.Decode(data)
	if err != nil {
		return nil, err
	}
	return &MapFile{file: f}, nil
}

// Origin returns the real-world coordinates of grid point (0,0).
func (f *MapFile) Origin() (x, y float64) {
	return f.file.Header.OriginX, f.file.Header.OriginY
}

// Scale returns the map scale denominator.
func (f *MapFile) Scale() float64 { return f.file.Header.Scale }

// Version returns the format version recorded in the header.
func (f *MapFile) Version() (major, minor uint16) {
	return f.file.Header.MajorVersion, f.file.Header.MinorVersion
}

// Colors returns the color table in file order.
func (f *MapFile) Colors() []Color { return f.file.Colors }

// Symbols returns the symbol table in file order.
func (f *MapFile) Symbols() []AreaSymbol { return f.file.Symbols }

// Objects returns the area objects in file order.
func (f *MapFile) Objects() []AreaObject {
	objects := make([]AreaObject, len(f.file.Objects))
	for i, rec := range f.file.Objects {
		objects[i] = rec.AreaObject
	}
	return objects
}

// ObjectCount returns the number of area objects.
func (f *MapFile) ObjectCount() int { return len(f.file.Objects) }

// SymbolsFor returns every symbol with code, in file order.
func (f *MapFile) SymbolsFor(code SymbolCode) []AreaSymbol {
	var result []AreaSymbol
	for _, s := range f.file.Symbols {
		if s.Code == code {
			result = append(result, s)
		}
	}
	return result
}

// ColorOf returns the color a symbol references.
func (f *MapFile) ColorOf(s AreaSymbol) (Color, bool) {
	if s.Color < 0 || s.Color >= len(f.file.Colors) {
		return Color{}, false
	}
	return f.file.Colors[s.Color], true
}

// Bounds returns the union of all object bounding boxes.
func (f *MapFile) Bounds() (r Rect, ok bool) {
	for i, rec := range f.file.Objects {
		if i == 0 {
			r = rec.Stored
			continue
		}
		r = r.Union(rec.Stored)
	}
	return r, len(f.file.Objects) > 0
}

// Layout returns the section table from the footer.
func (f *MapFile) Layout() Layout {
	ft := f.file.Footer
	return Layout{
		Colors:       Section{Offset: ft.ColorsOffset, Size: ft.ColorsSize},
		Symbols:      Section{Offset: ft.SymbolsOffset, Size: ft.SymbolsSize},
		Objects:      Section{Offset: ft.ObjectsOffset, Size: ft.ObjectsSize},
		FooterOffset: f.file.Header.FooterOffset,
		Checksum:     ft.Checksum,
	}
}
