package views

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"eventdeck/internal/cards"
)

// DefaultCardWidth is used when no width is configured
const DefaultCardWidth = 72

const minCardWidth = 30

// CardRenderer draws a single event card
type CardRenderer struct {
	styles          *Styles
	width           int
	showDescription bool
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles, width int, showDescription bool) *CardRenderer {
	if width <= 0 {
		width = DefaultCardWidth
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	return &CardRenderer{
		styles:          styles,
		width:           width,
		showDescription: showDescription,
	}
}

// Width returns the outer width a card is drawn at when the terminal allows
func (r *CardRenderer) Width() int {
	return r.width
}

// RenderCard renders a card. query is the normalized search text and is
// highlighted where it occurs.
func (r *CardRenderer) RenderCard(c cards.Card, query string, maxWidth int) string {
	width := r.width
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	// Border and padding take two columns on each side
	inner := width - 4

	var lines []string

	// Title line with the status badge on the right
	title := r.highlight(c.Title, query, r.styles.CardTitle)
	badge := r.renderBadge(c.Badge)
	gap := inner - lipgloss.Width(title) - lipgloss.Width(badge)
	if badge != "" && gap >= 1 {
		lines = append(lines, title+strings.Repeat(" ", gap)+badge)
	} else {
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(title))
		if badge != "" {
			lines = append(lines, badge)
		}
	}

	// Speaker
	speaker := fmt.Sprintf("%s %s", r.speakerImage(c.Speaker), r.highlight(c.Speaker.Name, query, r.styles.Speaker))
	if c.Speaker.Profile != "" {
		speaker += r.styles.Dim.Render(" · " + c.Speaker.Profile)
	}
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render(speaker))
	if c.Speaker.LinkedIn != "" {
		lines = append(lines, r.styles.Dim.Render("in ")+r.styles.Link.Render(c.Speaker.LinkedIn))
	}

	if r.showDescription && c.Description != "" {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(r.highlight(c.Description, query, lipgloss.NewStyle())))
	}

	if len(c.Skills) > 0 {
		lines = append(lines, "")
		lines = append(lines, r.renderSkills(c.Skills, query, inner))
	}

	// Registration count and control
	lines = append(lines, "")
	count := r.styles.Dim.Render(fmt.Sprintf("%d registered", c.Registrations))
	button := r.renderRegistration(c.Registration)
	gap = inner - lipgloss.Width(count) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, count+strings.Repeat(" ", gap)+button)
	if c.Registration.Enabled {
		lines = append(lines, r.styles.Link.Render(c.Registration.URL))
	}

	return r.styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) renderBadge(b cards.Badge) string {
	if b.Label == "" {
		return ""
	}
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("16"))
	if color := GetBadgeColor(b.Class); color != "" {
		style = style.Background(lipgloss.Color(color))
	}
	return style.Render(b.Label)
}

func (r *CardRenderer) renderRegistration(reg cards.Registration) string {
	if reg.Enabled {
		return r.styles.Button.Render(reg.Label)
	}
	return r.styles.ButtonOff.Render(reg.Label)
}

func (r *CardRenderer) speakerImage(s cards.Speaker) string {
	if s.HasImage {
		// Terminals can't show the picture; mark that one exists
		return "🖼"
	}
	return cards.PlaceholderGlyph
}

// renderSkills lays tags out left to right, wrapping at width
func (r *CardRenderer) renderSkills(skills []string, query string, width int) string {
	var rows []string
	row := ""
	for _, skill := range skills {
		tag := r.styles.Tag.Render(skill)
		if query != "" && strings.Contains(strings.ToLower(skill), query) {
			tag = r.styles.Tag.Foreground(lipgloss.Color("226")).Bold(true).Render(skill)
		}
		if row != "" && lipgloss.Width(row)+1+lipgloss.Width(tag) > width {
			rows = append(rows, row)
			row = ""
		}
		if row != "" {
			row += " "
		}
		row += tag
	}
	if row != "" {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// highlight renders text with base, marking case-insensitive occurrences of query.
// Matching is done rune by rune so a match never splits a multi-byte rune.
func (r *CardRenderer) highlight(text, query string, base lipgloss.Style) string {
	if query == "" {
		return base.Render(text)
	}
	runes := []rune(text)
	lower := make([]rune, len(runes))
	for i, c := range runes {
		lower[i] = unicode.ToLower(c)
	}
	q := []rune(query)
	for i, c := range q {
		q[i] = unicode.ToLower(c)
	}

	var b strings.Builder
	rest, found := 0, false
	for i := 0; i+len(q) <= len(lower); {
		if !slices.Equal(lower[i:i+len(q)], q) {
			i++
			continue
		}
		found = true
		if i > rest {
			b.WriteString(base.Render(string(runes[rest:i])))
		}
		b.WriteString(r.styles.Highlight.Inherit(base).Render(string(runes[i : i+len(q)])))
		i += len(q)
		rest = i
	}
	if !found {
		return base.Render(text)
	}
	if rest < len(runes) {
		b.WriteString(base.Render(string(runes[rest:])))
	}
	return b.String()
}
