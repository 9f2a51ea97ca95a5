package ocd

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// spatialIndex provides O(log n) bounding box queries over exported objects.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedObject wraps an object for R-tree storage. pos is its export order.
type indexedObject struct {
	pos    int
	object AreaObject
	bounds Rect
}

// Bounds implements rtreego.Spatial.
func (o *indexedObject) Bounds() rtreego.Rect {
	return gridRect(o.bounds)
}

// gridRect converts an inclusive grid rectangle to an R-tree rectangle.
//
// Each cell is widened by half a unit on every side. The R-tree treats
// touching edges as disjoint, and the widening makes its test agree with
// Rect.Intersects for integer coordinates. It also keeps zero-width boxes
// legal.
func gridRect(r Rect) rtreego.Rect {
	point := rtreego.Point{float64(r.MinX) - 0.5, float64(r.MinY) - 0.5}
	lengths := []float64{float64(r.Width()) + 1, float64(r.Height()) + 1}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

func buildSpatialIndex(objects []AreaObject) *spatialIndex {
	// 2D, min=25 children, max=50 children
	rtree := rtreego.NewTree(2, 25, 50)
	for i, obj := range objects {
		rtree.Insert(&indexedObject{pos: i, object: obj, bounds: obj.Bounds()})
	}
	return &spatialIndex{rtree: rtree}
}

// ObjectsInBounds returns the objects whose bounding box intersects r, in
// export order. Edges are inclusive.
//
// The first call after an export builds an R-tree over the object store;
// later calls reuse it until the next ExportArea.
//
// Example:
//
//	viewport := ocd.Rect{MinX: 0, MinY: 0, MaxX: 500, MaxY: 500}
//	for _, obj := range w.ObjectsInBounds(viewport) {
//	    fmt.Println(obj.Code, len(obj.Polygon))
//	}
func (w *Writer) ObjectsInBounds(r Rect) []AreaObject {
	if w.check() != nil || w.m.Objects.Len() == 0 {
		return nil
	}
	if r.MaxX < r.MinX || r.MaxY < r.MinY {
		return nil
	}
	if w.index == nil {
		w.index = buildSpatialIndex(w.m.Objects.All())
	}

	spatials := w.index.rtree.SearchIntersect(gridRect(r))
	hits := make([]*indexedObject, 0, len(spatials))
	for _, s := range spatials {
		indexed := s.(*indexedObject)
		if indexed.bounds.Intersects(r) {
			hits = append(hits, indexed)
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	result := make([]AreaObject, len(hits))
	for i, h := range hits {
		result[i] = h.object
	}
	return result
}

// objectsInBoundsLinear scans every object. Used to check the index.
func (w *Writer) objectsInBoundsLinear(r Rect) []AreaObject {
	var result []AreaObject
	for _, obj := range w.Objects() {
		if obj.Bounds().Intersects(r) {
			result = append(result, obj)
		}
	}
	return result
}

// Bounds returns the union of all object bounding boxes. ok is false when
// nothing has been exported.
func (w *Writer) Bounds() (r Rect, ok bool) {
	if w.check() != nil {
		return Rect{}, false
	}
	return w.m.Objects.Bounds()
}
