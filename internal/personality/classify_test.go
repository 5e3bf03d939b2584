package personality

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testQuestion struct {
	id   int
	axis Axis
}

func (q testQuestion) QuestionID() int    { return q.id }
func (q testQuestion) QuestionAxis() Axis { return q.axis }

// testQuestions mirrors the shipped layout: three questions per axis.
func testQuestions() []testQuestion {
	var qs []testQuestion
	id := 1
	for _, a := range Axes {
		for i := 0; i < 3; i++ {
			qs = append(qs, testQuestion{id: id, axis: a})
			id++
		}
	}
	return qs
}

func answersFor(qs []testQuestion, target Type) map[int]string {
	answers := make(map[int]string, len(qs))
	for _, q := range qs {
		answers[q.id] = string(target.Letter(q.axis))
	}
	return answers
}

func TestClassify_AllFirstLetters(t *testing.T) {
	qs := testQuestions()
	tally, typ := Classify(answersFor(qs, "ESTJ"), qs)

	if typ != "ESTJ" {
		t.Errorf("type = %q, want ESTJ", typ)
	}
	want := map[string]int{"E": 3, "I": 0, "S": 3, "N": 0, "T": 3, "F": 0, "J": 3, "P": 0}
	if diff := cmp.Diff(want, tally.Map()); diff != "" {
		t.Errorf("tally mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_RoundTripAllTypes(t *testing.T) {
	qs := testQuestions()
	for _, target := range AllTypes() {
		t.Run(string(target), func(t *testing.T) {
			_, got := Classify(answersFor(qs, target), qs)
			if got != target {
				t.Errorf("Classify = %q, want %q", got, target)
			}
		})
	}
}

func TestClassify_EmptyYieldsTieDefault(t *testing.T) {
	qs := testQuestions()
	tally, typ := Classify(map[int]string{}, qs)
	if typ != "ESTJ" {
		t.Errorf("type = %q, want ESTJ", typ)
	}
	for _, l := range Letters {
		if tally.Count(l) != 0 {
			t.Errorf("count[%s] = %d, want 0", l, tally.Count(l))
		}
	}
}

func TestClassify_AllNoPreference(t *testing.T) {
	qs := testQuestions()
	answers := make(map[int]string)
	for _, q := range qs {
		answers[q.id] = NoPreference
	}
	_, typ := Classify(answers, qs)
	if typ != "ESTJ" {
		t.Errorf("type = %q, want ESTJ", typ)
	}
}

func TestClassify_TieBreakPerAxis(t *testing.T) {
	qs := testQuestions()
	// One vote each way on every axis, third question skipped.
	answers := map[int]string{
		1: "E", 2: "I",
		4: "N", 5: "S",
		7: "F", 8: "T",
		10: "P", 11: "J",
	}
	_, typ := Classify(answers, qs)
	if typ != "ESTJ" {
		t.Errorf("type = %q, want ESTJ on full ties", typ)
	}
}

func TestClassify_MajorityWins(t *testing.T) {
	qs := testQuestions()
	answers := map[int]string{
		1: "I", 2: "I", 3: "E",
		4: "N", 5: NoPreference, 6: NoPreference,
		7: "F", 8: "F", 9: "T",
		10: "P", 11: "-", 12: "J",
	}
	_, typ := Classify(answers, qs)
	// JP is tied 1-1 and falls back to J.
	if typ != "INFJ" {
		t.Errorf("type = %q, want INFJ", typ)
	}
}

func TestClassify_IgnoresUnknownEntries(t *testing.T) {
	qs := testQuestions()
	answers := map[int]string{
		1:  "I",
		2:  "S", // letter from another axis
		3:  "X", // not a letter
		99: "I", // unknown question
		4:  "",  // empty
		5:  "n", // wrong case
	}
	tally, typ := Classify(answers, qs)
	if tally.Count(Introversion) != 1 {
		t.Errorf("count[I] = %d, want 1", tally.Count(Introversion))
	}
	if tally.Count(Sensing) != 0 {
		t.Errorf("count[S] = %d, want 0", tally.Count(Sensing))
	}
	if typ != "ISTJ" {
		t.Errorf("type = %q, want ISTJ", typ)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	qs := testQuestions()
	rng := rand.New(rand.NewSource(7))
	values := []string{"E", "I", "S", "N", "T", "F", "J", "P", NoPreference, "?"}

	for i := 0; i < 200; i++ {
		answers := make(map[int]string)
		for _, q := range qs {
			if rng.Intn(4) == 0 {
				continue
			}
			answers[q.id] = values[rng.Intn(len(values))]
		}

		t1, ty1 := Classify(answers, qs)
		t2, ty2 := Classify(answers, qs)
		if ty1 != ty2 {
			t.Fatalf("non-deterministic type: %q vs %q", ty1, ty2)
		}
		if diff := cmp.Diff(t1.Map(), t2.Map()); diff != "" {
			t.Fatalf("non-deterministic tally:\n%s", diff)
		}
	}
}

func TestClassify_CountsBoundedByAxisSize(t *testing.T) {
	qs := testQuestions()
	perAxis := map[Axis]int{}
	for _, q := range qs {
		perAxis[q.axis]++
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		answers := make(map[int]string)
		for id := 0; id <= len(qs)+2; id++ {
			answers[id] = string(Letters[rng.Intn(len(Letters))])
		}
		tally, typ := Classify(answers, qs)

		for _, a := range Axes {
			first, second := tally.Count(a.First()), tally.Count(a.Second())
			if first < 0 || first > perAxis[a] || second < 0 || second > perAxis[a] {
				t.Fatalf("axis %s counts out of bounds: %d/%d (max %d)", a, first, second, perAxis[a])
			}
			if first+second > perAxis[a] {
				t.Fatalf("axis %s total %d exceeds %d", a, first+second, perAxis[a])
			}

			want := a.TieBreak()
			if second > first {
				want = a.Second()
			} else if first > second {
				want = a.First()
			}
			if got := typ.Letter(a); got != want {
				t.Fatalf("axis %s letter = %q, want %q (tally %s)", a, got, want, tally)
			}
		}
	}
}

func TestClassify_OverwriteKeepsLatest(t *testing.T) {
	qs := testQuestions()
	answers := map[int]string{1: "E"}
	answers[1] = "I"

	tally, _ := Classify(answers, qs)
	if tally.Count(Extraversion) != 0 || tally.Count(Introversion) != 1 {
		t.Errorf("tally = %s, want only I:1 on EI", tally)
	}
}
