package ocad

// File layout
//
// All integers are little-endian, floats are IEEE-754 binary64 little-endian.
// The file is a fixed header, three sections, and a trailing footer:
//
//	header (64) | colors (40 * n) | symbols (48 * n) | objects (28 + 8 * points each) | footer (40)
//
// Header:
//
//	0   [2]byte  magic 0xAD 0x0C
//	2   u8       file type (2)
//	3   u8       reserved
//	4   u16      major version (8)
//	6   u16      minor version (0)
//	8   f64      origin X
//	16  f64      origin Y
//	24  f64      scale
//	32  f64      grid unit, millimetres on paper
//	40  u32      color count
//	44  u32      symbol count
//	48  u32      object count
//	52  u32      footer offset
//	56  u32      flags
//	60  u32      reserved
//
// Color record:
//
//	0   u32      index
//	4   u8 x 4   C, M, Y, K
//	8   [32]byte name
//
// Symbol record:
//
//	0   u32      index
//	4   i32      code
//	8   u32      color index
//	12  u8       symbol type (3 = area)
//	13  u8       fill (1 = solid)
//	14  u16      reserved
//	16  [32]byte name
//
// Object record:
//
//	0   i32      symbol code
//	4   u8       object type (3 = area)
//	5   u8       reserved
//	6   u16      reserved
//	8   u32      point count n
//	12  i32 x 4  bounding box minX, minY, maxX, maxY
//	28  n x (i32 x, i32 y)
//
// Footer:
//
//	0   u32      colors offset
//	4   u32      colors size
//	8   u32      symbols offset
//	12  u32      symbols size
//	16  u32      objects offset
//	20  u32      objects size
//	24  u64      xxhash64 of bytes [0, footer offset)
//	32  [4]byte  "OCDX"
//	36  u32      footer size (40)
const (
	HeaderSize       = 64
	ColorRecordSize  = 8 + NameFieldSize
	SymbolRecordSize = 16 + NameFieldSize
	ObjectHeaderSize = 28
	PointSize        = 8
	FooterSize       = 40

	FileType     = 2
	MajorVersion = 8
	MinorVersion = 0

	// FlagRealCoords marks the origin and scale as a real-world georeference.
	FlagRealCoords = 1 << 0
)

// Magic is the leading file marker.
var Magic = [2]byte{0xAD, 0x0C}

// FooterMagic closes every file.
var FooterMagic = [4]byte{'O', 'C', 'D', 'X'}

// Header is the decoded fixed-size file header.
type Header struct {
	FileType     uint8
	MajorVersion uint16
	MinorVersion uint16
	OriginX      float64
	OriginY      float64
	Scale        float64
	GridUnitMM   float64
	ColorCount   uint32
	SymbolCount  uint32
	ObjectCount  uint32
	FooterOffset uint32
	Flags        uint32
}

// Footer is the decoded section index at the end of the file.
type Footer struct {
	ColorsOffset  uint32
	ColorsSize    uint32
	SymbolsOffset uint32
	SymbolsSize   uint32
	ObjectsOffset uint32
	ObjectsSize   uint32
	Checksum      uint64
}

// objectRecordSize returns the encoded size of an object with n points.
func objectRecordSize(n int) int {
	return ObjectHeaderSize + n*PointSize
}
