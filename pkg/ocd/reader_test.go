package ocd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadLayout(t *testing.T) {
	w := newSampleWriter(t)
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	size := buf.Len()

	f, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if major, minor := f.Version(); major != 8 || minor != 0 {
		t.Errorf("Expected version 8.0, got %d.%d", major, minor)
	}

	layout := f.Layout()
	if layout.Colors.Offset != 64 || layout.Colors.Size != 40 {
		t.Errorf("Unexpected color section %+v", layout.Colors)
	}
	if layout.Symbols.Offset != 104 || layout.Symbols.Size != 96 {
		t.Errorf("Unexpected symbol section %+v", layout.Symbols)
	}
	if layout.Objects.Offset != 200 || layout.Objects.Size != 52 {
		t.Errorf("Unexpected object section %+v", layout.Objects)
	}
	if int(layout.FooterOffset) != size-40 {
		t.Errorf("Expected footer at %d, got %d", size-40, layout.FooterOffset)
	}

	bounds, ok := f.Bounds()
	if !ok || bounds != (Rect{MinX: 10, MinY: 10, MaxX: 100, MaxY: 100}) {
		t.Errorf("Unexpected bounds %+v", bounds)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.ocd"))
	var ioErr *ErrIO
	if !errors.As(err, &ioErr) {
		t.Errorf("Expected ErrIO for missing file, got %v", err)
	}

	junk := filepath.Join(dir, "junk.ocd")
	if err := os.WriteFile(junk, bytes.Repeat([]byte{0x42}, 200), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err = ReadFile(junk)
	var corrupt *ErrCorruptFile
	if !errors.As(err, &corrupt) {
		t.Errorf("Expected ErrCorruptFile for junk file, got %v", err)
	}
}
