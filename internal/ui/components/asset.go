package components

import (
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sixteen/internal/ui/theme"
)

// AssetExists reports whether the asset at root/rel is a readable file.
// An empty rel never exists.
func AssetExists(root, rel string) bool {
	if rel == "" {
		return false
	}
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, rel)
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// AssetCard renders a card naming an image asset. Terminals cannot show
// the image itself, so a present asset shows its path and a missing one
// shows the "No Image" placeholder.
func AssetCard(rel string, exists bool, cw int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(1, 2)

	if !exists {
		return style.
			BorderForeground(theme.Border).
			Foreground(theme.TextDim).
			Render("▨\nNo Image")
	}
	return style.
		BorderForeground(theme.Secondary).
		Foreground(theme.Text).
		Render("🖼  " + rel)
}
