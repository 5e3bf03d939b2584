package content

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/sixteen/internal/personality"
)

// SupportedMajor is the content format major version this build reads.
const SupportedMajor = "v1"

// Validate checks the semantic contract the quiz relies on:
//   - ids are unique, positive and ascending (presentation order)
//   - every question has two options carrying its axis letters
//   - every axis has at least one question
//   - the result table covers all sixteen types, keyed consistently
//   - a default call-to-action link is configured
func (c *Content) Validate() error {
	verr := &ValidationError{}

	switch {
	case !semver.IsValid(c.Version):
		verr.add("version %q is not a semantic version", c.Version)
	case semver.Major(c.Version) != SupportedMajor:
		verr.add("version %s is not supported (want %s.x.x)", c.Version, SupportedMajor)
	}

	if strings.TrimSpace(c.DefaultCTALink) == "" {
		verr.add("default_cta_link is empty")
	}

	if len(c.Questions) == 0 {
		verr.add("no questions")
	}

	seen := make(map[int]bool, len(c.Questions))
	perAxis := make(map[personality.Axis]int)
	prev := 0
	for i, q := range c.Questions {
		if q.ID <= 0 {
			verr.add("question #%d: id %d is not positive", i+1, q.ID)
		}
		if seen[q.ID] {
			verr.add("question #%d: duplicate id %d", i+1, q.ID)
		}
		seen[q.ID] = true
		if q.ID <= prev {
			verr.add("question #%d: id %d is out of order", i+1, q.ID)
		}
		prev = q.ID

		if strings.TrimSpace(q.Text) == "" {
			verr.add("question %d: empty text", q.ID)
		}
		if !q.Axis.Valid() {
			verr.add("question %d: unknown axis %q", q.ID, q.Axis)
			continue
		}
		perAxis[q.Axis]++

		a, b := q.Options[0].Value, q.Options[1].Value
		if !q.Axis.Has(a) || !q.Axis.Has(b) || a == b {
			verr.add("question %d: options %q/%q must be the two letters of axis %s", q.ID, a, b, q.Axis)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				verr.add("question %d: option %d has no text", q.ID, j+1)
			}
		}
	}

	for _, a := range personality.Axes {
		if perAxis[a] == 0 {
			verr.add("axis %s has no questions", a)
		}
	}

	for _, t := range personality.AllTypes() {
		r, ok := c.Results[t]
		if !ok {
			verr.add("result for type %s is missing", t)
			continue
		}
		if r.Type != t {
			verr.add("result keyed %s declares type %q", t, r.Type)
		}
	}
	for t := range c.Results {
		if !t.Valid() {
			verr.add("result key %q is not a personality type", t)
		}
	}

	if len(verr.Issues) > 0 {
		return verr
	}
	return nil
}
