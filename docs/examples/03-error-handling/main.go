package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/ocd/pkg/ocd"
)

func main() {
	h := ocd.CreateWriter(0, 0, 15000)

	// Names must fit 31 bytes of Windows-1252
	_, err := ocd.AddColor(h, "a color name that is much too long")
	var invalidName *ocd.ErrInvalidName
	if errors.As(err, &invalidName) {
		log.Printf("Expected error: %v", err)
	}

	// Colors belong to the writer that issued them
	other := ocd.CreateWriter(0, 0, 15000)
	color, err := ocd.AddColor(other, "black")
	if err != nil {
		log.Fatal(err)
	}
	_, err = ocd.AddAreaSymbol(h, "forest", 4050, color)
	var unknown *ocd.ErrUnknownColor
	if errors.As(err, &unknown) {
		log.Printf("Expected error: %v", err)
	}

	// Areas need three points
	err = ocd.ExportArea(h, []ocd.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 2, 4050)
	var degenerate *ocd.ErrDegenerateGeometry
	if errors.As(err, &degenerate) {
		log.Printf("Expected error: %v", err)
	}

	// Unwritable destinations surface as ErrIO
	err = ocd.WriteFile(h, "/nonexistent/dir/map.ocd")
	var ioErr *ocd.ErrIO
	if errors.As(err, &ioErr) {
		log.Printf("Expected error: %v (path %s)", err, ioErr.Path)
	}

	// Handles die with their writer
	if err := ocd.DestroyWriter(h); err != nil {
		log.Fatal(err)
	}
	err = ocd.DestroyWriter(h)
	var invalid *ocd.ErrInvalidHandle
	if errors.As(err, &invalid) {
		log.Printf("Expected error: %v", err)
	}

	_ = ocd.DestroyWriter(other)
	fmt.Println("Done")
}
