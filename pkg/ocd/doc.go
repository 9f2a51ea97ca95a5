// Package ocd writes compact binary orienteering-style map files.
//
// A map is authored in memory and flushed on demand. A Writer holds the
// georeference (origin and scale), an ordered color table, an ordered table
// of area symbols, and the exported area objects.
//
// # Basic Usage
//
//	w := ocd.NewWriter(5555000, 4444000, 10000)
//	defer w.Close()
//
//	color, err := w.AddColor("some color")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := w.AddAreaSymbol("symtwo", 4010, color); err != nil {
//	    log.Fatal(err)
//	}
//
//	triangle := []ocd.Point{{X: 10, Y: 100}, {X: 100, Y: 10}, {X: 100, Y: 100}}
//	if err := w.ExportArea(triangle, 4010); err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.WriteFile("map.ocd"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handles
//
// Colors and symbols are identified by positional handles: the first color
// registered has index 0, the second index 1, and so on. The same index is
// used as the cross-reference inside the file. Handles remember which Writer
// issued them, so a color handle from one Writer is rejected by another with
// ErrUnknownColor.
//
// Area objects reference symbols by bare code, not by handle. An object may
// carry a code that no symbol was registered with; it is still written. Several
// symbols may share one code.
//
// # Handle Surface
//
// Registry exposes the same engine through opaque WriterHandle values, for
// callers that cannot hold Go pointers (bindings, RPC layers):
//
//	h := ocd.CreateWriter(5555000, 4444000, 10000)
//	color, _ := ocd.AddColor(h, "some color")
//	_, _ = ocd.AddAreaSymbol(h, "symone", 4100, color)
//	_ = ocd.ExportArea(h, points, len(points), 4100)
//	_ = ocd.WriteFile(h, "map.ocd")
//	_ = ocd.DestroyWriter(h)
//
// Using a handle after DestroyWriter returns ErrInvalidHandle.
//
// # Coordinates
//
// Points are int32 grid coordinates. One grid unit is 0.1 mm on paper, so at
// 1:10000 one grid unit is one metre on the ground. GridToWorld and
// WorldToGrid convert using the Writer's origin and scale.
//
// # File Layout
//
// Files are little-endian: a 64-byte header, the color section, the symbol
// section, the object section, and a 40-byte footer holding the offset of
// each section and a checksum. ReadFile decodes files written by this package.
//
// # Concurrency
//
// A Writer must be used from one goroutine at a time. Distinct Writers share
// nothing. Registry is safe for concurrent use as long as each WriterHandle
// is driven by a single goroutine.
package ocd
