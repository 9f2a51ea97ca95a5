package ocad

import (
	"fmt"
)

// SymbolCode is the caller-chosen classification number of a symbol,
// written in tenths: 4100 is displayed as "410.0".
//
// Codes are not unique keys. Several symbols may share one code and area
// objects may carry codes no symbol was registered with.
type SymbolCode int32

// String renders the code in the dotted form, e.g. "401.0".
func (c SymbolCode) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

// Symbol type and fill values written to symbol records.
const (
	SymbolTypeArea = 3
	AreaFillSolid  = 1
)

// AreaSymbol is one entry of the symbol table. Index is the positional
// registration order; Color is the positional index of the referenced color.
type AreaSymbol struct {
	Index int
	Name  string
	Code  SymbolCode
	Color int
}

// SymbolTable is the ordered registry of area symbols.
type SymbolTable struct {
	symbols []AreaSymbol
}

// Add appends an area symbol referencing color, which must be registered in
// colors. Returns the positional index of the new symbol.
func (t *SymbolTable) Add(name string, code SymbolCode, color int, colors *ColorTable) (int, error) {
	if colors == nil || !colors.Has(color) {
		return 0, &ErrUnknownColor{Color: color}
	}
	if err := ValidateName(name); err != nil {
		return 0, err
	}

	idx := len(t.symbols)
	t.symbols = append(t.symbols, AreaSymbol{
		Index: idx,
		Name:  name,
		Code:  code,
		Color: color,
	})
	return idx, nil
}

// Lookup returns every symbol registered with code, in registration order.
func (t *SymbolTable) Lookup(code SymbolCode) []AreaSymbol {
	var out []AreaSymbol
	for _, s := range t.symbols {
		if s.Code == code {
			out = append(out, s)
		}
	}
	return out
}

// At returns the symbol at idx. It panics if idx is out of range.
func (t *SymbolTable) At(idx int) AreaSymbol {
	return t.symbols[idx]
}

// Len returns the number of registered symbols.
func (t *SymbolTable) Len() int {
	return len(t.symbols)
}

// All returns a copy of the symbols in registration order.
func (t *SymbolTable) All() []AreaSymbol {
	out := make([]AreaSymbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}
