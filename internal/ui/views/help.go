package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/domain"
)

// HelpContent builds the help text for the features that are available
func HelpContent(filters []domain.FilterKey, searchEnabled bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b *strings.Builder, keys, desc string) {
		fmt.Fprintf(b, "  %s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", keys)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("eventdeck Help"))
	help.WriteString("\n")

	if len(filters) > 0 {
		help.WriteString(sectionStyle.Render("Filters"))
		help.WriteString("\n")
		for i, key := range filters {
			line(&help, fmt.Sprintf("%d, %c", i+1, key[0]), fmt.Sprintf("Show %s events", strings.ToLower(key.Label())))
		}
		line(&help, "Tab/S-Tab", "Next/previous filter")
		help.WriteString("\n")
	}

	if searchEnabled {
		help.WriteString(sectionStyle.Render("Search"))
		help.WriteString("\n")
		line(&help, "/", "Search name, speaker, skills and description")
		line(&help, "Enter", "Run the search (empty shows the filter again)")
		line(&help, "Esc", "Leave the prompt, or clear the search")
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	line(&help, "↑/↓, j/k", "Scroll up/down")
	line(&help, "PgUp/PgDn", "Page up/down")
	line(&help, "gg/G", "Go to top/bottom")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line(&help, "v", "Open the results in a pager")
	line(&help, "r", "Reload events")
	line(&help, "H", "Open this help in a pager")
	line(&help, "?", "Toggle this help")
	fmt.Fprintf(&help, "  %s %s", keyStyle.Render(fmt.Sprintf("%-12s", "q")), descStyle.Render("Quit"))

	return help.String()
}

// ScrollHelp cuts the help content to height lines starting at scrollOffset
func ScrollHelp(content string, height, scrollOffset int) string {
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + visibleHeight
	visible := append([]string(nil), lines[scrollOffset:endLine]...)

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visible[0] = dim.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visible[len(visible)-1] = dim.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}
