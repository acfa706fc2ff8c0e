// Package display renders the game for people: a console narrator that
// follows the event bus, standings and statistics tables, and an interactive
// discard picker for human seats.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/drawpoker/poker"
)

// Styles contains all styling for console output
type Styles struct {
	Header    lipgloss.Style
	Player    lipgloss.Style
	Category  lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Marked    lipgloss.Style
	Cursor    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Border    lipgloss.Style
}

// NewRenderer creates a renderer for w. With color disabled every style
// renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds the styles for a renderer
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Marked: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Strikethrough(true),
		Cursor: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Card renders one card in its suit colour
func (s *Styles) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return s.RedCard.Render(c.String())
	}
	return s.BlackCard.Render(c.String())
}

// Hand renders cards separated by spaces
func (s *Styles) Hand(cards []poker.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += s.Card(c)
	}
	return out
}
