package personality

// Question is the view of a quiz question that scoring needs.
type Question interface {
	QuestionID() int
	QuestionAxis() Axis
}

// Classify tallies answers against questions and derives the type.
//
// An answer counts only when its question is known and its value is a
// letter of that question's axis; NoPreference and anything else are
// ignored. Each count therefore stays within the number of questions
// on its axis. Ties resolve through Axis.TieBreak, so an empty map
// yields ESTJ.
func Classify[Q Question](answers map[int]string, questions []Q) (Tally, Type) {
	axisByID := make(map[int]Axis, len(questions))
	for _, q := range questions {
		axisByID[q.QuestionID()] = q.QuestionAxis()
	}

	tally := NewTally()
	for id, value := range answers {
		axis, ok := axisByID[id]
		if !ok {
			continue
		}
		l := Letter(value)
		if !axis.Has(l) {
			continue
		}
		tally.inc(l)
	}
	return tally, tally.Type()
}
