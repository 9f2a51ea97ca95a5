package ocad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// File is a decoded map file.
type File struct {
	Header  Header
	Footer  Footer
	Colors  []Color
	Symbols []AreaSymbol
	Objects []ObjectRecord
}

// ObjectRecord is a decoded object together with the bounding box stored in
// the file.
type ObjectRecord struct {
	AreaObject
	Type   uint8
	Stored Rect
}

// Decode parses a file produced by Encode.
//
// Only this package's own layout is understood. Every structural field is
// checked: markers, checksum, section offsets and sizes against the header
// counts, and each object's stored bounding box against its points.
func Decode(data []byte) (*File, error) {
	if len(data) < HeaderSize+FooterSize {
		return nil, &ErrCorruptFile{Offset: len(data), Reason: "file shorter than header and footer"}
	}

	header, err := decodeHeader(data[:HeaderSize])
	if err != nil {
		return nil, err
	}

	footerStart := len(data) - FooterSize
	if int64(header.FooterOffset) != int64(footerStart) {
		return nil, &ErrCorruptFile{
			Offset: 52,
			Reason: fmt.Sprintf("footer offset %d, expected %d", header.FooterOffset, footerStart),
		}
	}
	footer, err := decodeFooter(data[footerStart:], footerStart)
	if err != nil {
		return nil, err
	}
	if sum := xxhash.Sum64(data[:footerStart]); sum != footer.Checksum {
		return nil, &ErrCorruptFile{
			Offset: footerStart + 24,
			Reason: fmt.Sprintf("checksum mismatch: stored %#x, computed %#x", footer.Checksum, sum),
		}
	}

	if err := checkSections(header, footer); err != nil {
		return nil, err
	}

	f := &File{Header: header, Footer: footer}

	if f.Colors, err = decodeColors(data, footer.ColorsOffset, int(header.ColorCount)); err != nil {
		return nil, fmt.Errorf("decode colors: %w", err)
	}
	if f.Symbols, err = decodeSymbols(data, footer.SymbolsOffset, int(header.SymbolCount), len(f.Colors)); err != nil {
		return nil, fmt.Errorf("decode symbols: %w", err)
	}
	section := data[footer.ObjectsOffset : footer.ObjectsOffset+footer.ObjectsSize]
	if f.Objects, err = decodeObjects(section, int(footer.ObjectsOffset), int(header.ObjectCount)); err != nil {
		return nil, fmt.Errorf("decode objects: %w", err)
	}

	return f, nil
}

func decodeHeader(b []byte) (Header, error) {
	le := binary.LittleEndian
	if !bytes.Equal(b[0:2], Magic[:]) {
		return Header{}, &ErrCorruptFile{Offset: 0, Reason: fmt.Sprintf("bad magic % x", b[0:2])}
	}

	h := Header{
		FileType:     b[2],
		MajorVersion: le.Uint16(b[4:6]),
		MinorVersion: le.Uint16(b[6:8]),
		OriginX:      math.Float64frombits(le.Uint64(b[8:16])),
		OriginY:      math.Float64frombits(le.Uint64(b[16:24])),
		Scale:        math.Float64frombits(le.Uint64(b[24:32])),
		GridUnitMM:   math.Float64frombits(le.Uint64(b[32:40])),
		ColorCount:   le.Uint32(b[40:44]),
		SymbolCount:  le.Uint32(b[44:48]),
		ObjectCount:  le.Uint32(b[48:52]),
		FooterOffset: le.Uint32(b[52:56]),
		Flags:        le.Uint32(b[56:60]),
	}
	if h.FileType != FileType {
		return Header{}, &ErrCorruptFile{Offset: 2, Reason: fmt.Sprintf("unsupported file type %d", h.FileType)}
	}
	if h.MajorVersion != MajorVersion {
		return Header{}, &ErrCorruptFile{Offset: 4, Reason: fmt.Sprintf("unsupported version %d.%d", h.MajorVersion, h.MinorVersion)}
	}
	return h, nil
}

func decodeFooter(b []byte, at int) (Footer, error) {
	le := binary.LittleEndian
	if !bytes.Equal(b[32:36], FooterMagic[:]) {
		return Footer{}, &ErrCorruptFile{Offset: at + 32, Reason: "bad footer marker"}
	}
	if size := le.Uint32(b[36:40]); size != FooterSize {
		return Footer{}, &ErrCorruptFile{Offset: at + 36, Reason: fmt.Sprintf("footer size %d", size)}
	}
	return Footer{
		ColorsOffset:  le.Uint32(b[0:4]),
		ColorsSize:    le.Uint32(b[4:8]),
		SymbolsOffset: le.Uint32(b[8:12]),
		SymbolsSize:   le.Uint32(b[12:16]),
		ObjectsOffset: le.Uint32(b[16:20]),
		ObjectsSize:   le.Uint32(b[20:24]),
		Checksum:      le.Uint64(b[24:32]),
	}, nil
}

// minObjectSize is the smallest encoded object: a header and a triangle.
const minObjectSize = ObjectHeaderSize + MinAreaPoints*PointSize

// checkSections verifies that the sections tile the space between header and
// footer in order and that fixed-size sections match the header counts.
func checkSections(h Header, f Footer) error {
	if f.ColorsOffset != HeaderSize {
		return &ErrCorruptFile{Offset: int(h.FooterOffset), Reason: "colors section does not follow header"}
	}
	if uint64(f.ColorsSize) != uint64(h.ColorCount)*ColorRecordSize {
		return &ErrCorruptFile{Offset: int(h.FooterOffset) + 4, Reason: "colors size does not match color count"}
	}
	if uint64(f.SymbolsOffset) != uint64(f.ColorsOffset)+uint64(f.ColorsSize) {
		return &ErrCorruptFile{Offset: int(h.FooterOffset) + 8, Reason: "symbols section misplaced"}
	}
	if uint64(f.SymbolsSize) != uint64(h.SymbolCount)*SymbolRecordSize {
		return &ErrCorruptFile{Offset: int(h.FooterOffset) + 12, Reason: "symbols size does not match symbol count"}
	}
	if uint64(f.ObjectsOffset) != uint64(f.SymbolsOffset)+uint64(f.SymbolsSize) {
		return &ErrCorruptFile{Offset: int(h.FooterOffset) + 16, Reason: "objects section misplaced"}
	}
	if uint64(f.ObjectsOffset)+uint64(f.ObjectsSize) != uint64(h.FooterOffset) {
		return &ErrCorruptFile{Offset: int(h.FooterOffset) + 20, Reason: "objects section does not end at footer"}
	}
	if uint64(h.ObjectCount)*minObjectSize > uint64(f.ObjectsSize) {
		return &ErrCorruptFile{Offset: 48, Reason: fmt.Sprintf("object count %d exceeds %d-byte objects section", h.ObjectCount, f.ObjectsSize)}
	}
	return nil
}

func decodeColors(data []byte, offset uint32, n int) ([]Color, error) {
	le := binary.LittleEndian
	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		at := int(offset) + i*ColorRecordSize
		rec := data[at : at+ColorRecordSize]
		if idx := le.Uint32(rec[0:4]); idx != uint32(i) {
			return nil, &ErrCorruptFile{Offset: at, Reason: fmt.Sprintf("color %d has index %d", i, idx)}
		}
		name, err := decodeName(rec[8:ColorRecordSize])
		if err != nil {
			return nil, atOffset(err, at+8)
		}
		colors = append(colors, Color{
			Index: i,
			Name:  name,
			CMYK:  CMYK{C: rec[4], M: rec[5], Y: rec[6], K: rec[7]},
		})
	}
	return colors, nil
}

func decodeSymbols(data []byte, offset uint32, n, colorCount int) ([]AreaSymbol, error) {
	le := binary.LittleEndian
	symbols := make([]AreaSymbol, 0, n)
	for i := 0; i < n; i++ {
		at := int(offset) + i*SymbolRecordSize
		rec := data[at : at+SymbolRecordSize]
		if idx := le.Uint32(rec[0:4]); idx != uint32(i) {
			return nil, &ErrCorruptFile{Offset: at, Reason: fmt.Sprintf("symbol %d has index %d", i, idx)}
		}
		color := le.Uint32(rec[8:12])
		if uint64(color) >= uint64(colorCount) {
			return nil, &ErrCorruptFile{Offset: at + 8, Reason: fmt.Sprintf("symbol %d references color %d of %d", i, color, colorCount)}
		}
		if rec[12] != SymbolTypeArea {
			return nil, &ErrCorruptFile{Offset: at + 12, Reason: fmt.Sprintf("unsupported symbol type %d", rec[12])}
		}
		name, err := decodeName(rec[16:SymbolRecordSize])
		if err != nil {
			return nil, atOffset(err, at+16)
		}
		symbols = append(symbols, AreaSymbol{
			Index: i,
			Name:  name,
			Code:  SymbolCode(int32(le.Uint32(rec[4:8]))),
			Color: int(color),
		})
	}
	return symbols, nil
}

// decodeObjects walks the variable-length object section. base is the file
// offset of section, used for error reporting.
func decodeObjects(section []byte, base, n int) ([]ObjectRecord, error) {
	le := binary.LittleEndian
	objects := make([]ObjectRecord, 0, n)
	pos := 0
	for i := 0; i < n; i++ {
		if len(section)-pos < ObjectHeaderSize {
			return nil, &ErrCorruptFile{Offset: base + pos, Reason: fmt.Sprintf("object %d truncated", i)}
		}
		rec := section[pos:]
		count := le.Uint32(rec[8:12])
		if uint64(count)*PointSize > uint64(len(rec)-ObjectHeaderSize) {
			return nil, &ErrCorruptFile{Offset: base + pos + 8, Reason: fmt.Sprintf("object %d point count %d overruns section", i, count)}
		}
		if count < MinAreaPoints {
			return nil, &ErrCorruptFile{Offset: base + pos + 8, Reason: fmt.Sprintf("object %d has %d points", i, count)}
		}

		poly := make(Polygon, count)
		for j := range poly {
			p := rec[ObjectHeaderSize+j*PointSize:]
			poly[j] = Point{
				X: int32(le.Uint32(p[0:4])),
				Y: int32(le.Uint32(p[4:8])),
			}
		}
		stored := Rect{
			MinX: int32(le.Uint32(rec[12:16])),
			MinY: int32(le.Uint32(rec[16:20])),
			MaxX: int32(le.Uint32(rec[20:24])),
			MaxY: int32(le.Uint32(rec[24:28])),
		}
		if stored != poly.Bounds() {
			return nil, &ErrCorruptFile{Offset: base + pos + 12, Reason: fmt.Sprintf("object %d bounding box %v does not match points %v", i, stored, poly.Bounds())}
		}

		objects = append(objects, ObjectRecord{
			AreaObject: AreaObject{
				Polygon: poly,
				Code:    SymbolCode(int32(le.Uint32(rec[0:4]))),
			},
			Type:   rec[4],
			Stored: stored,
		})
		pos += objectRecordSize(int(count))
	}
	if pos != len(section) {
		return nil, &ErrCorruptFile{Offset: base + pos, Reason: fmt.Sprintf("%d trailing bytes after objects", len(section)-pos)}
	}
	return objects, nil
}

// atOffset fills in the offset of a corrupt-file error raised without one.
func atOffset(err error, offset int) error {
	if ce, ok := err.(*ErrCorruptFile); ok && ce.Offset == 0 {
		return &ErrCorruptFile{Offset: offset, Reason: ce.Reason}
	}
	return err
}
