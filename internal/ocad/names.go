package ocad

import (
	"golang.org/x/text/encoding/charmap"
)

// NameFieldSize is the width of a name field: one length byte followed by up
// to MaxNameLen bytes of Windows-1252 text, zero padded.
const NameFieldSize = 32

// MaxNameLen is the longest encoded name a name field can hold.
const MaxNameLen = NameFieldSize - 1

// nameCharmap is the code page of name fields.
var nameCharmap = charmap.Windows1252

// encodeName converts name to a Pascal-style name field.
func encodeName(name string) ([NameFieldSize]byte, error) {
	var field [NameFieldSize]byte

	encoded, err := nameCharmap.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return field, &ErrInvalidName{Name: name, Reason: "not representable in Windows-1252"}
	}
	if len(encoded) > MaxNameLen {
		return field, &ErrInvalidName{
			Name:   name,
			Reason: "longer than 31 bytes",
		}
	}

	field[0] = byte(len(encoded))
	copy(field[1:], encoded)
	return field, nil
}

// decodeName reads a Pascal-style name field.
func decodeName(field []byte) (string, error) {
	if len(field) != NameFieldSize {
		return "", &ErrCorruptFile{Reason: "short name field"}
	}
	n := int(field[0])
	if n > MaxNameLen {
		return "", &ErrCorruptFile{Reason: "name length exceeds field"}
	}
	decoded, err := nameCharmap.NewDecoder().Bytes(field[1 : 1+n])
	if err != nil {
		return "", &ErrCorruptFile{Reason: "undecodable name"}
	}
	return string(decoded), nil
}
