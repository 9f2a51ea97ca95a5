package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/ocd/pkg/ocd"
)

func main() {
	w := ocd.NewWriter(600000, 200000, 10000)
	defer w.Close()

	// 100x100 grid of 50 m squares
	for i := int32(0); i < 100; i++ {
		for j := int32(0); j < 100; j++ {
			x, y := i*100, j*100
			square := []ocd.Point{{X: x, Y: y}, {X: x + 50, Y: y}, {X: x + 50, Y: y + 50}, {X: x, Y: y + 50}}
			if err := w.ExportArea(square, 4010); err != nil {
				log.Fatal(err)
			}
		}
	}

	// Query R-tree index for objects in view (O(log n))
	viewport := ocd.Rect{MinX: 1000, MinY: 1000, MaxX: 1500, MaxY: 1500}
	objects := w.ObjectsInBounds(viewport)

	fmt.Printf("Visible objects: %d of %d\n", len(objects), w.ObjectCount())
	for _, obj := range objects[:3] {
		sw := w.GridToWorld(obj.Polygon[0])
		fmt.Printf("  %s at %.0f, %.0f\n", obj.Code, sw.X(), sw.Y())
	}
}
