package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/cards"
	"eventdeck/internal/domain"
	"eventdeck/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Page             cards.Page
	Filters          []domain.FilterKey // filters offered in the bar, empty hides it
	ActiveFilter     domain.FilterKey
	Counts           map[domain.FilterKey]int
	SearchEnabled    bool
	SearchText       string // submitted search, verbatim
	InputMode        string // "search" while the prompt is open
	InputPrompt      string
	TextInput        string // rendered text input
	Loading          bool
	StatusMessage    string
	StatusIsError    bool
	ShowHelp         bool
	HelpScrollOffset int
	ViewportOffset   int
	ViewportHeight   int
	HelpModel        help.Model
	Keys             KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(cardWidth int, showDescription bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles, cardWidth, showDescription),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.renderTitleLine(state, availableWidth))
	content.WriteString("\n")

	if len(state.Filters) > 0 {
		content.WriteString(r.RenderFilterBar(state.Filters, state.ActiveFilter, state.Counts))
		content.WriteString("\n")
	}

	if state.InputMode != "" {
		content.WriteString(r.styles.Search.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
		content.WriteString("\n")
	}
	content.WriteString("\n")

	// Results area
	lines := r.PageLines(state.Page, availableWidth, highlightQuery(state.Page))
	content.WriteString(r.renderViewport(lines, state.ViewportOffset, state.ViewportHeight))

	// Footer pushed to the bottom
	footer := r.renderFooter(state)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2 // Main padding
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - lipgloss.Height(footer); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		helpContent := ScrollHelp(HelpContent(state.Filters, state.SearchEnabled), state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// ChromeHeight returns how many lines the title, filter bar, prompt and footer
// take, so the caller can size the results viewport
func (r *Renderer) ChromeHeight(state ViewState) int {
	height := 2 // Main padding
	height++    // title
	if len(state.Filters) > 0 {
		height++
	}
	if state.InputMode != "" {
		height++
	}
	height++ // gap before results
	height++ // gap before footer
	height += lipgloss.Height(r.renderFooter(state))
	return height
}

func (r *Renderer) renderTitleLine(state ViewState, availableWidth int) string {
	logo := r.styles.Title.Render("eventdeck")

	var right []string
	if state.Loading {
		right = append(right, r.styles.StatusLoad.Render("⟳ Loading"))
	}
	if q := strings.TrimSpace(state.SearchText); q != "" && state.Page.Selector.IsSearch() {
		right = append(right, r.styles.Search.Render(fmt.Sprintf("[Search: %s]", q)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// RenderFilterBar renders the filter tabs with the active one marked
func (r *Renderer) RenderFilterBar(filters []domain.FilterKey, active domain.FilterKey, counts map[domain.FilterKey]int) string {
	tabs := make([]string, 0, len(filters))
	for i, key := range filters {
		label := fmt.Sprintf("%d %s", i+1, key.Label())
		if counts != nil {
			label = fmt.Sprintf("%s (%d)", label, counts[key])
		}
		if key == active {
			tabs = append(tabs, r.styles.FilterActive.Render(label))
		} else {
			tabs = append(tabs, r.styles.FilterTab.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

// PageLines renders a page into lines: the optional results header followed by
// the cards, or the single placeholder
func (r *Renderer) PageLines(page cards.Page, width int, query string) []string {
	var blocks []string

	if page.Placeholder != nil {
		blocks = append(blocks, r.renderPlaceholder(*page.Placeholder, width))
		return strings.Split(strings.Join(blocks, "\n"), "\n")
	}

	if page.Header != "" {
		blocks = append(blocks, r.styles.ResultsHeader.Render(page.Header))
		blocks = append(blocks, "")
	}
	for _, c := range page.Cards {
		blocks = append(blocks, r.cardRender.RenderCard(c, query, width))
	}
	if len(blocks) == 0 {
		return nil
	}
	return strings.Split(strings.Join(blocks, "\n"), "\n")
}

// RenderPage renders a whole page without a viewport
func (r *Renderer) RenderPage(page cards.Page, width int) string {
	return strings.Join(r.PageLines(page, width, highlightQuery(page)), "\n")
}

// highlightQuery is the text marked inside cards: the query of a search page
func highlightQuery(page cards.Page) string {
	if page.Selector.IsSearch() {
		return page.Selector.Query
	}
	return ""
}

func (r *Renderer) renderPlaceholder(p cards.Placeholder, width int) string {
	titleStyle := r.styles.PlaceholderHd
	switch p.Kind {
	case cards.LoadError:
		titleStyle = titleStyle.Foreground(lipgloss.Color("203"))
	case cards.Loading:
		titleStyle = titleStyle.Foreground(lipgloss.Color("241"))
	}

	boxWidth := r.cardRender.Width()
	if width > 0 && width < boxWidth {
		boxWidth = width
	}
	inner := lipgloss.NewStyle().Width(boxWidth - 6)
	body := titleStyle.Render(p.Title) + "\n\n" + inner.Render(p.Message)
	return r.styles.Placeholder.Width(boxWidth - 2).Render(body)
}

// renderViewport draws the visible window of lines with scroll indicators
func (r *Renderer) renderViewport(lines []string, offset, height int) string {
	if height <= 0 {
		return strings.Join(lines, "\n")
	}

	nav := logic.NewNavigator()
	nav.UpdateState(offset, height, len(lines))
	start, end := nav.VisibleRange()

	var out []string
	if nav.HasMoreAbove() {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more lines above ↑", start)))
	}
	out = append(out, lines[start:end]...)
	if nav.HasMoreBelow() {
		out = append(out, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more lines below ↓", len(lines)-end)))
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	var parts []string
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}
	if !state.ShowHelp {
		helpModel := state.HelpModel
		parts = append(parts, helpModel.View(state.Keys))
	}
	return strings.Join(parts, "\n")
}
