package content

import (
	"fmt"
	"strings"
)

// ValidationError collects every problem found in a content set.
type ValidationError struct {
	Source string
	Issues []string
}

func (e *ValidationError) Error() string {
	src := e.Source
	if src == "" {
		src = "content"
	}
	if len(e.Issues) == 1 {
		return fmt.Sprintf("invalid %s: %s", src, e.Issues[0])
	}
	return fmt.Sprintf("invalid %s: %d problems:\n  - %s", src, len(e.Issues), strings.Join(e.Issues, "\n  - "))
}

func (e *ValidationError) add(format string, args ...any) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}
