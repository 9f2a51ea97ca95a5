package ocad

// ObjectTypeArea is the object type written to object records.
const ObjectTypeArea = 3

// AreaObject is one exported polygon tagged with a bare symbol code.
// The code is not resolved against the symbol table.
type AreaObject struct {
	Polygon Polygon
	Code    SymbolCode
}

// Bounds recomputes the object's bounding box from its polygon.
func (o AreaObject) Bounds() Rect {
	return o.Polygon.Bounds()
}

// ObjectStore is the ordered collection of exported area objects.
type ObjectStore struct {
	objects []AreaObject
}

// Add appends an area built from the first count entries of points.
// On error the store is left unchanged. The points are copied.
func (s *ObjectStore) Add(points []Point, count int, code SymbolCode) error {
	if err := ValidatePolygon(points, count); err != nil {
		return err
	}

	poly := make(Polygon, count)
	copy(poly, points[:count])
	s.objects = append(s.objects, AreaObject{Polygon: poly, Code: code})
	return nil
}

// At returns the object at idx. It panics if idx is out of range.
func (s *ObjectStore) At(idx int) AreaObject {
	return s.objects[idx]
}

// Len returns the number of stored objects.
func (s *ObjectStore) Len() int {
	return len(s.objects)
}

// All returns the objects in insertion order. The slice is a copy; the
// polygons are shared and must not be modified.
func (s *ObjectStore) All() []AreaObject {
	out := make([]AreaObject, len(s.objects))
	copy(out, s.objects)
	return out
}

// Bounds returns the union of all object bounds. ok is false when the store
// is empty.
func (s *ObjectStore) Bounds() (r Rect, ok bool) {
	for i, o := range s.objects {
		if i == 0 {
			r = o.Bounds()
			continue
		}
		r = r.Union(o.Bounds())
	}
	return r, len(s.objects) > 0
}
