package ocad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Encoder serializes a Map into the file layout described in format.go.
//
// Section sizes are only known once encoded, so each section is staged in its
// own buffer before the header and footer offsets are computed.
type Encoder struct {
	colors  *bytes.Buffer
	symbols *bytes.Buffer
	objects *bytes.Buffer
}

// NewEncoder creates an encoder. An Encoder may be reused for several maps.
func NewEncoder() *Encoder {
	return &Encoder{
		colors:  &bytes.Buffer{},
		symbols: &bytes.Buffer{},
		objects: &bytes.Buffer{},
	}
}

// Encode returns the complete file for m. The output depends only on the
// contents of m, so encoding an unchanged map twice yields identical bytes.
func (e *Encoder) Encode(m *Map) ([]byte, error) {
	e.colors.Reset()
	e.symbols.Reset()
	e.objects.Reset()

	if err := e.writeColors(&m.Colors); err != nil {
		return nil, fmt.Errorf("write colors: %w", err)
	}
	if err := e.writeSymbols(&m.Symbols); err != nil {
		return nil, fmt.Errorf("write symbols: %w", err)
	}
	if err := e.writeObjects(&m.Objects); err != nil {
		return nil, fmt.Errorf("write objects: %w", err)
	}

	colorsOffset := uint64(HeaderSize)
	symbolsOffset := colorsOffset + uint64(e.colors.Len())
	objectsOffset := symbolsOffset + uint64(e.symbols.Len())
	footerOffset := objectsOffset + uint64(e.objects.Len())
	if footerOffset+FooterSize > math.MaxUint32 {
		return nil, fmt.Errorf("map too large: %d bytes", footerOffset+FooterSize)
	}

	out := make([]byte, 0, footerOffset+FooterSize)
	out = appendHeader(out, m, Header{
		ColorCount:   uint32(m.Colors.Len()),
		SymbolCount:  uint32(m.Symbols.Len()),
		ObjectCount:  uint32(m.Objects.Len()),
		FooterOffset: uint32(footerOffset),
	})
	out = append(out, e.colors.Bytes()...)
	out = append(out, e.symbols.Bytes()...)
	out = append(out, e.objects.Bytes()...)

	out = appendFooter(out, Footer{
		ColorsOffset:  uint32(colorsOffset),
		ColorsSize:    uint32(e.colors.Len()),
		SymbolsOffset: uint32(symbolsOffset),
		SymbolsSize:   uint32(e.symbols.Len()),
		ObjectsOffset: uint32(objectsOffset),
		ObjectsSize:   uint32(e.objects.Len()),
		Checksum:      xxhash.Sum64(out),
	})
	return out, nil
}

// Encode serializes m with a fresh Encoder.
func Encode(m *Map) ([]byte, error) {
	return NewEncoder().Encode(m)
}

// appendHeader appends the 64-byte header. Counts and footer offset come from
// h; origin and scale come from m.
func appendHeader(b []byte, m *Map, h Header) []byte {
	le := binary.LittleEndian
	b = append(b, Magic[:]...)
	b = append(b, FileType, 0)
	b = le.AppendUint16(b, MajorVersion)
	b = le.AppendUint16(b, MinorVersion)
	b = le.AppendUint64(b, math.Float64bits(m.OriginX))
	b = le.AppendUint64(b, math.Float64bits(m.OriginY))
	b = le.AppendUint64(b, math.Float64bits(m.Scale))
	b = le.AppendUint64(b, math.Float64bits(GridUnitMM))
	b = le.AppendUint32(b, h.ColorCount)
	b = le.AppendUint32(b, h.SymbolCount)
	b = le.AppendUint32(b, h.ObjectCount)
	b = le.AppendUint32(b, h.FooterOffset)
	b = le.AppendUint32(b, FlagRealCoords)
	b = le.AppendUint32(b, 0)
	return b
}

func appendFooter(b []byte, f Footer) []byte {
	le := binary.LittleEndian
	b = le.AppendUint32(b, f.ColorsOffset)
	b = le.AppendUint32(b, f.ColorsSize)
	b = le.AppendUint32(b, f.SymbolsOffset)
	b = le.AppendUint32(b, f.SymbolsSize)
	b = le.AppendUint32(b, f.ObjectsOffset)
	b = le.AppendUint32(b, f.ObjectsSize)
	b = le.AppendUint64(b, f.Checksum)
	b = append(b, FooterMagic[:]...)
	b = le.AppendUint32(b, FooterSize)
	return b
}

func (e *Encoder) writeColors(t *ColorTable) error {
	le := binary.LittleEndian
	rec := make([]byte, 0, ColorRecordSize)
	for _, c := range t.colors {
		name, err := encodeName(c.Name)
		if err != nil {
			return err
		}
		rec = rec[:0]
		rec = le.AppendUint32(rec, uint32(c.Index))
		rec = append(rec, c.CMYK.C, c.CMYK.M, c.CMYK.Y, c.CMYK.K)
		rec = append(rec, name[:]...)
		e.colors.Write(rec)
	}
	return nil
}

func (e *Encoder) writeSymbols(t *SymbolTable) error {
	le := binary.LittleEndian
	rec := make([]byte, 0, SymbolRecordSize)
	for _, s := range t.symbols {
		name, err := encodeName(s.Name)
		if err != nil {
			return err
		}
		rec = rec[:0]
		rec = le.AppendUint32(rec, uint32(s.Index))
		rec = le.AppendUint32(rec, uint32(s.Code))
		rec = le.AppendUint32(rec, uint32(s.Color))
		rec = append(rec, SymbolTypeArea, AreaFillSolid)
		rec = le.AppendUint16(rec, 0)
		rec = append(rec, name[:]...)
		e.symbols.Write(rec)
	}
	return nil
}

func (e *Encoder) writeObjects(s *ObjectStore) error {
	le := binary.LittleEndian
	var rec []byte
	for i, o := range s.objects {
		if uint64(len(o.Polygon)) > math.MaxUint32 {
			return fmt.Errorf("object %d: too many points (%d)", i, len(o.Polygon))
		}
		bbox := o.Bounds()

		rec = rec[:0]
		rec = le.AppendUint32(rec, uint32(o.Code))
		rec = append(rec, ObjectTypeArea, 0)
		rec = le.AppendUint16(rec, 0)
		rec = le.AppendUint32(rec, uint32(len(o.Polygon)))
		rec = le.AppendUint32(rec, uint32(bbox.MinX))
		rec = le.AppendUint32(rec, uint32(bbox.MinY))
		rec = le.AppendUint32(rec, uint32(bbox.MaxX))
		rec = le.AppendUint32(rec, uint32(bbox.MaxY))
		for _, p := range o.Polygon {
			rec = le.AppendUint32(rec, uint32(p.X))
			rec = le.AppendUint32(rec, uint32(p.Y))
		}
		e.objects.Write(rec)
	}
	return nil
}
