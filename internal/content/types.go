package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/sixteen/internal/personality"
)

// ErrMissingResult is returned when the result table has no record for a
// derived type. It indicates broken content, not a user error.
var ErrMissingResult = errors.New("missing result record")

// Option is one of the two answers offered for a question.
type Option struct {
	Text  string             `json:"text" yaml:"text"`
	Value personality.Letter `json:"value" yaml:"value"`
}

// Question is an immutable quiz prompt bound to a single axis.
type Question struct {
	ID      int              `json:"id" yaml:"id"`
	Text    string           `json:"text" yaml:"text"`
	Axis    personality.Axis `json:"axis" yaml:"axis"`
	Options [2]Option        `json:"options" yaml:"options"`
	Asset   string           `json:"asset,omitempty" yaml:"asset,omitempty"`
}

func (q Question) QuestionID() int                { return q.ID }
func (q Question) QuestionAxis() personality.Axis { return q.Axis }

// Accepts reports whether value is a legal answer for q: one of its two
// option values or personality.NoPreference.
func (q Question) Accepts(value string) bool {
	if value == personality.NoPreference {
		return true
	}
	return value == string(q.Options[0].Value) || value == string(q.Options[1].Value)
}

// ResultRecord is the static copy shown for a personality type.
type ResultRecord struct {
	Type        personality.Type `json:"type" yaml:"type"`
	Title       string           `json:"title" yaml:"title"`
	Description string           `json:"description" yaml:"description"`
	Strengths   []string         `json:"strengths" yaml:"strengths"`
	Weaknesses  []string         `json:"weaknesses" yaml:"weaknesses"`
	Professions []string         `json:"professions,omitempty" yaml:"professions,omitempty"`
	CTALink     string           `json:"cta_link,omitempty" yaml:"cta_link,omitempty"`
	Asset       string           `json:"asset,omitempty" yaml:"asset,omitempty"`
}

// Content is the full read-only data set consumed by the quiz.
type Content struct {
	Version        string                            `json:"version" yaml:"version"`
	DefaultCTALink string                            `json:"default_cta_link" yaml:"default_cta_link"`
	Questions      []Question                        `json:"questions" yaml:"questions"`
	Results        map[personality.Type]ResultRecord `json:"results" yaml:"results"`
}

// QuestionByID returns the question with the given id.
func (c *Content) QuestionByID(id int) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// AxisSize returns how many questions are assigned to axis a.
func (c *Content) AxisSize(a personality.Axis) int {
	n := 0
	for _, q := range c.Questions {
		if q.Axis == a {
			n++
		}
	}
	return n
}

// Lookup returns the result record for t.
func (c *Content) Lookup(t personality.Type) (ResultRecord, error) {
	r, ok := c.Results[t]
	if !ok {
		return ResultRecord{}, fmt.Errorf("%w for type %q", ErrMissingResult, t)
	}
	return r, nil
}

// CTALink returns the call-to-action link for t, falling back to the
// configured default when the record has none.
func (c *Content) CTALink(t personality.Type) string {
	if r, ok := c.Results[t]; ok && strings.TrimSpace(r.CTALink) != "" {
		return r.CTALink
	}
	return c.DefaultCTALink
}

// Steps partitions the questions into groups of size, in order.
// The last group is shorter when the count does not divide evenly.
func (c *Content) Steps(size int) [][]Question {
	return Partition(c.Questions, size)
}

// Partition splits questions into consecutive groups of size.
func Partition(questions []Question, size int) [][]Question {
	if size < 1 {
		size = 1
	}
	steps := make([][]Question, 0, (len(questions)+size-1)/size)
	for start := 0; start < len(questions); start += size {
		end := start + size
		if end > len(questions) {
			end = len(questions)
		}
		steps = append(steps, questions[start:end])
	}
	return steps
}
