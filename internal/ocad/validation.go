package ocad

// ValidatePolygon checks that the first count entries of points form a
// closed area: at least MinAreaPoints points, all of them supplied.
func ValidatePolygon(points []Point, count int) error {
	if count < MinAreaPoints || count > len(points) {
		return &ErrDegenerateGeometry{Count: count, Available: len(points)}
	}
	return nil
}

// ValidateName checks that name fits a name field and decodes back to the
// same string.
func ValidateName(name string) error {
	field, err := encodeName(name)
	if err != nil {
		return err
	}
	decoded, err := decodeName(field[:])
	if err != nil || decoded != name {
		return &ErrInvalidName{Name: name, Reason: "does not round-trip through Windows-1252"}
	}
	return nil
}
