package personality

import (
	"fmt"
	"strings"
)

// Type is a four-letter personality code such as "INTP".
type Type string

// AllTypes returns the sixteen codes in a stable order
// (EI varies slowest, JP fastest).
func AllTypes() []Type {
	types := []Type{""}
	for _, a := range Axes {
		next := make([]Type, 0, len(types)*2)
		for _, prefix := range types {
			next = append(next, prefix+Type(a.First()), prefix+Type(a.Second()))
		}
		types = next
	}
	return types
}

// Valid reports whether t is one of the sixteen codes.
func (t Type) Valid() bool {
	if len(t) != len(Axes) {
		return false
	}
	for i, a := range Axes {
		if !a.Has(Letter(t[i : i+1])) {
			return false
		}
	}
	return true
}

// Letter returns the letter chosen for axis a.
func (t Type) Letter(a Axis) Letter {
	for i, ax := range Axes {
		if ax == a && i < len(t) {
			return Letter(t[i : i+1])
		}
	}
	return ""
}

// ParseType normalises s to upper case and validates it.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid personality type %q", s)
	}
	return t, nil
}
