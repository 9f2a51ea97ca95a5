package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/ocd/pkg/ocd"
)

func main() {
	// Georeference: grid (0,0) at 5555000/4444000, 1:10000
	w := ocd.NewWriter(5555000, 4444000, 10000)
	defer w.Close()

	// One color shared by two area symbols
	color, err := w.AddColor("some color")
	if err != nil {
		log.Fatal(err)
	}
	if _, err := w.AddAreaSymbol("symone", 4100, color); err != nil {
		log.Fatal(err)
	}
	if _, err := w.AddAreaSymbol("symtwo", 4010, color); err != nil {
		log.Fatal(err)
	}

	// A triangle tagged with the second symbol's code
	triangle := []ocd.Point{{X: 10, Y: 100}, {X: 100, Y: 10}, {X: 100, Y: 100}}
	if err := w.ExportArea(triangle, 4010); err != nil {
		log.Fatal(err)
	}

	if err := w.WriteFile("triangle.ocd"); err != nil {
		log.Fatal(err)
	}

	// Read it back
	f, err := ocd.ReadFile("triangle.ocd")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Colors: %d\n", len(f.Colors()))
	fmt.Printf("Symbols: %d\n", len(f.Symbols()))
	fmt.Printf("Objects: %d\n", f.ObjectCount())
	for _, obj := range f.Objects() {
		for _, sym := range f.SymbolsFor(obj.Code) {
			fmt.Printf("  %s -> %s\n", obj.Code, sym.Name)
		}
	}
}
