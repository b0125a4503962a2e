package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of main content. The
// main content is greyed out around the popup.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 {
		width = modalW
	}
	if height <= 0 {
		height = modalH
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(ansi.Strip(mainContent), "\n")
	for len(baseLines) < y+modalH {
		baseLines = append(baseLines, "")
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = gray.Render(line)
			continue
		}

		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+modalW, "")
		out[i] = gray.Render(left) + popupLines[row] + gray.Render(right)
	}
	return strings.Join(out, "\n")
}
