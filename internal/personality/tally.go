package personality

import (
	"fmt"
	"strings"
)

// Tally holds the answer count for each of the eight letters.
// It is always rebuilt from an answer map, never edited in place.
type Tally struct {
	counts map[Letter]int
}

// NewTally returns a tally with all eight counts at zero.
func NewTally() Tally {
	counts := make(map[Letter]int, len(Letters))
	for _, l := range Letters {
		counts[l] = 0
	}
	return Tally{counts: counts}
}

// Count returns the count for l. Unknown letters count zero.
func (t Tally) Count(l Letter) int {
	return t.counts[l]
}

// Winner returns the letter with the larger count on axis a,
// falling back to a.TieBreak() on an exact tie.
func (t Tally) Winner(a Axis) Letter {
	first, second := t.Count(a.First()), t.Count(a.Second())
	switch {
	case first > second:
		return a.First()
	case second > first:
		return a.Second()
	default:
		return a.TieBreak()
	}
}

// Margin returns the absolute difference between the two poles of a.
func (t Tally) Margin(a Axis) int {
	d := t.Count(a.First()) - t.Count(a.Second())
	if d < 0 {
		return -d
	}
	return d
}

// Map returns a copy of the counts keyed by letter string.
func (t Tally) Map() map[string]int {
	m := make(map[string]int, len(Letters))
	for _, l := range Letters {
		m[string(l)] = t.Count(l)
	}
	return m
}

// Type derives the four-letter code from the tally.
func (t Tally) Type() Type {
	var b strings.Builder
	for _, a := range Axes {
		b.WriteString(string(t.Winner(a)))
	}
	return Type(b.String())
}

func (t Tally) String() string {
	parts := make([]string, 0, len(Letters))
	for _, l := range Letters {
		parts = append(parts, fmt.Sprintf("%s:%d", l, t.Count(l)))
	}
	return strings.Join(parts, " ")
}

func (t *Tally) inc(l Letter) {
	if t.counts == nil {
		*t = NewTally()
	}
	t.counts[l]++
}
