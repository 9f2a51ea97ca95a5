package ocd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/beetlebugorg/ocd/internal/ocad"
)

// writerIDs issues a distinct id to every Writer so handles can be checked
// against the context that produced them.
var writerIDs atomic.Uint64

// Writer is one map-writing context: georeference, color table, symbol
// table and object store. Nothing is written to disk until WriteFile,
// WriteTo or Bytes is called, and those can be called any number of times.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	id     uint64
	m      *ocad.Map
	enc    *ocad.Encoder
	index  *spatialIndex // built lazily by ObjectsInBounds
	opts   Options
	log    *slog.Logger
	closed atomic.Bool // read by Registry.Live
}

// ColorHandle identifies a color registered with a Writer.
type ColorHandle struct {
	writer uint64
	index  int
}

// Index returns the color's position in the color table. The first color
// registered has index 0.
func (h ColorHandle) Index() int { return h.index }

// SymbolHandle identifies an area symbol registered with a Writer.
type SymbolHandle struct {
	writer uint64
	index  int
}

// Index returns the symbol's position in the symbol table.
func (h SymbolHandle) Index() int { return h.index }

// NewWriter creates an empty writing context with default options.
//
// originX and originY are the real-world coordinates of grid point (0,0) and
// scale is the map scale denominator. All three are stored verbatim.
func NewWriter(originX, originY, scale float64) *Writer {
	return NewWriterWithOptions(originX, originY, scale, DefaultOptions())
}

// NewWriterWithOptions creates an empty writing context with custom options.
// Zero fields of opts take their DefaultOptions values.
func NewWriterWithOptions(originX, originY, scale float64, opts Options) *Writer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultCMYK == (CMYK{}) {
		opts.DefaultCMYK = defaultCMYK
	}
	id := writerIDs.Add(1)
	return &Writer{
		id:   id,
		m:    ocad.NewMap(originX, originY, scale),
		enc:  ocad.NewEncoder(),
		opts: opts,
		log:  opts.Logger.With("writer", id),
	}
}

func (w *Writer) check() error {
	if w == nil {
		return &ErrInvalidHandle{Kind: "writer"}
	}
	if w.closed.Load() {
		return &ErrInvalidHandle{Kind: "writer", Handle: w.id}
	}
	return nil
}

// AddColor registers a color with the default CMYK values and returns its
// handle. Handles are issued in registration order starting at 0. Duplicate
// names are allowed.
func (w *Writer) AddColor(name string) (ColorHandle, error) {
	return w.AddColorCMYK(name, w.opts.DefaultCMYK)
}

// AddColorCMYK registers a color with explicit CMYK values. Components above
// 100 are clamped.
func (w *Writer) AddColorCMYK(name string, cmyk CMYK) (ColorHandle, error) {
	if err := w.check(); err != nil {
		return ColorHandle{}, err
	}
	idx, err := w.m.Colors.Add(name, cmyk)
	if err != nil {
		return ColorHandle{}, err
	}
	return ColorHandle{writer: w.id, index: idx}, nil
}

// AddAreaSymbol registers an area symbol filled with color. The color must
// have been issued by this Writer; otherwise ErrUnknownColor is returned and
// the symbol table is unchanged. Several symbols may share a code.
func (w *Writer) AddAreaSymbol(name string, code SymbolCode, color ColorHandle) (SymbolHandle, error) {
	if err := w.check(); err != nil {
		return SymbolHandle{}, err
	}
	if color.writer != w.id {
		return SymbolHandle{}, &ErrUnknownColor{Color: color.index}
	}
	idx, err := w.m.AddAreaSymbol(name, code, color.index)
	if err != nil {
		return SymbolHandle{}, err
	}
	return SymbolHandle{writer: w.id, index: idx}, nil
}

// ExportArea appends a polygon tagged with a symbol code. The ring is
// implicitly closed and must have at least three points. The code is not
// checked against registered symbols. The points are copied.
func (w *Writer) ExportArea(points []Point, code SymbolCode) error {
	return w.ExportAreaN(points, len(points), code)
}

// ExportAreaN is ExportArea using only the first count points. It returns
// ErrDegenerateGeometry when count is below three or exceeds len(points).
func (w *Writer) ExportAreaN(points []Point, count int, code SymbolCode) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := w.m.ExportArea(points, count, code); err != nil {
		return err
	}
	w.index = nil
	w.log.Debug("area_exported", "code", code.String(), "points", count, "objects", w.m.Objects.Len())
	return nil
}

// Bytes serializes the current state. The Writer is unchanged and the
// result is identical for identical state.
func (w *Writer) Bytes() ([]byte, error) {
	if err := w.check(); err != nil {
		return nil, err
	}
	return w.enc.Encode(w.m)
}

// WriteTo serializes the current state to dst. It implements io.WriterTo.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(data)
	if err != nil {
		return int64(n), &ErrIO{Op: "write", Err: err}
	}
	return int64(n), nil
}

// WriteFile serializes the current state to path, creating or truncating
// the file. It may be called repeatedly; each call reflects the state at
// that moment. On failure the returned error is *ErrIO and the file may be
// partially written.
func (w *Writer) WriteFile(path string) error {
	data, err := w.Bytes()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &ErrIO{Op: "create", Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &ErrIO{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &ErrIO{Op: "close", Path: path, Err: err}
	}

	w.log.Debug("map_written",
		"path", path,
		"bytes", len(data),
		"colors", w.m.Colors.Len(),
		"symbols", w.m.Symbols.Len(),
		"objects", w.m.Objects.Len(),
	)
	return nil
}

// Reset drops all colors, symbols and objects but keeps the georeference.
// Handles issued before Reset must not be reused.
func (w *Writer) Reset() error {
	if err := w.check(); err != nil {
		return err
	}
	w.m.Reset()
	w.index = nil
	return nil
}

// Close releases the Writer's contents. Any later call, including a second
// Close, returns ErrInvalidHandle.
func (w *Writer) Close() error {
	if err := w.check(); err != nil {
		return err
	}
	w.log.Debug("writer_closed", "objects", w.m.Objects.Len())
	w.m = nil
	w.index = nil
	w.closed.Store(true)
	return nil
}

// Origin returns the real-world coordinates of grid point (0,0).
func (w *Writer) Origin() (x, y float64) {
	if w.check() != nil {
		return 0, 0
	}
	return w.m.OriginX, w.m.OriginY
}

// Scale returns the map scale denominator.
func (w *Writer) Scale() float64 {
	if w.check() != nil {
		return 0
	}
	return w.m.Scale
}

// Colors returns the registered colors in registration order.
func (w *Writer) Colors() []Color {
	if w.check() != nil {
		return nil
	}
	return w.m.Colors.All()
}

// Symbols returns the registered area symbols in registration order.
func (w *Writer) Symbols() []AreaSymbol {
	if w.check() != nil {
		return nil
	}
	return w.m.Symbols.All()
}

// SymbolsFor returns every symbol registered with code, in registration order.
func (w *Writer) SymbolsFor(code SymbolCode) []AreaSymbol {
	if w.check() != nil {
		return nil
	}
	return w.m.Symbols.Lookup(code)
}

// Objects returns the exported area objects in export order.
func (w *Writer) Objects() []AreaObject {
	if w.check() != nil {
		return nil
	}
	return w.m.Objects.All()
}

// ColorCount returns the number of registered colors.
func (w *Writer) ColorCount() int {
	if w.check() != nil {
		return 0
	}
	return w.m.Colors.Len()
}

// SymbolCount returns the number of registered symbols.
func (w *Writer) SymbolCount() int {
	if w.check() != nil {
		return 0
	}
	return w.m.Symbols.Len()
}

// ObjectCount returns the number of exported area objects.
func (w *Writer) ObjectCount() int {
	if w.check() != nil {
		return 0
	}
	return w.m.Objects.Len()
}

// String summarizes the Writer for logs.
func (w *Writer) String() string {
	if w.check() != nil {
		return "ocd.Writer(closed)"
	}
	return fmt.Sprintf("ocd.Writer(colors=%d symbols=%d objects=%d scale=1:%g)",
		w.m.Colors.Len(), w.m.Symbols.Len(), w.m.Objects.Len(), w.m.Scale)
}
