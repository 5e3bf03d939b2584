package personality

import "fmt"

// Letter is one pole of an axis.
type Letter string

const (
	Extraversion Letter = "E"
	Introversion Letter = "I"
	Sensing      Letter = "S"
	Intuition    Letter = "N"
	Thinking     Letter = "T"
	Feeling      Letter = "F"
	Judging      Letter = "J"
	Perceiving   Letter = "P"
)

// NoPreference is the answer value that counts toward neither letter.
const NoPreference = "-"

// Axis is one of the four binary personality dimensions.
type Axis string

const (
	AxisEI Axis = "EI"
	AxisSN Axis = "SN"
	AxisTF Axis = "TF"
	AxisJP Axis = "JP"
)

// Axes lists the four axes in type-code order.
var Axes = []Axis{AxisEI, AxisSN, AxisTF, AxisJP}

// Letters lists all eight letters, pairwise in axis order.
var Letters = []Letter{
	Extraversion, Introversion,
	Sensing, Intuition,
	Thinking, Feeling,
	Judging, Perceiving,
}

// Valid reports whether a is one of the four axes.
func (a Axis) Valid() bool {
	switch a {
	case AxisEI, AxisSN, AxisTF, AxisJP:
		return true
	}
	return false
}

// First returns the first-listed letter of the pair.
func (a Axis) First() Letter {
	return Letter(a[:1])
}

// Second returns the second-listed letter of the pair.
func (a Axis) Second() Letter {
	return Letter(a[1:])
}

// TieBreak returns the letter chosen when both counts are equal.
// The first-listed letter always wins, so an axis answered entirely
// with NoPreference resolves to E, S, T or J.
func (a Axis) TieBreak() Letter {
	return a.First()
}

// Has reports whether l is one of the axis poles.
func (a Axis) Has(l Letter) bool {
	return a.Valid() && (l == a.First() || l == a.Second())
}

// Name returns a human-readable axis label.
func (a Axis) Name() string {
	switch a {
	case AxisEI:
		return "Energy"
	case AxisSN:
		return "Perception"
	case AxisTF:
		return "Judgement"
	case AxisJP:
		return "Lifestyle"
	}
	return string(a)
}

// AxisOf returns the axis a letter belongs to.
func AxisOf(l Letter) (Axis, bool) {
	for _, a := range Axes {
		if a.Has(l) {
			return a, true
		}
	}
	return "", false
}

// Valid reports whether l is one of the eight letters.
func (l Letter) Valid() bool {
	_, ok := AxisOf(l)
	return ok
}

// Name returns the full name of the letter's pole.
func (l Letter) Name() string {
	switch l {
	case Extraversion:
		return "Extraversion"
	case Introversion:
		return "Introversion"
	case Sensing:
		return "Sensing"
	case Intuition:
		return "Intuition"
	case Thinking:
		return "Thinking"
	case Feeling:
		return "Feeling"
	case Judging:
		return "Judging"
	case Perceiving:
		return "Perceiving"
	}
	return fmt.Sprintf("Letter(%s)", string(l))
}
