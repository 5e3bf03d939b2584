package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected below-minimum sizes to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Errorf("%dx%d should fit", MinWidth, MinHeight)
	}
}

func TestRenderHeaderShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Quiz", "Q 3/12", 100)
	for _, want := range []string{"Sixteen", "Quiz", "Q 3/12"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
}

func TestRenderFooterShowsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Next"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Next") {
		t.Errorf("footer missing hint:\n%s", f)
	}
}

func TestRenderFooterDropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "r", Description: "Restart"},
		{Key: "Ctrl+C", Description: "Quit the quiz and return to the shell"},
	}
	f := RenderFooter(hints, 40)
	if !strings.Contains(f, "Restart") {
		t.Errorf("footer dropped a hint that fits:\n%s", f)
	}
	if strings.Contains(f, "shell") {
		t.Errorf("footer kept a hint that overflows:\n%s", f)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	frame := RenderFrame(RenderHeader("T", "", 80), "body", RenderFooter(nil, 80), 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}
