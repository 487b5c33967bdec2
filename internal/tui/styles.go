package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

// Card geometry in terminal cells.
const (
	cardInnerWidth  = 24
	cardInnerHeight = 8
	cardWidth       = cardInnerWidth + 4 // padding + border
	cardHeight      = cardInnerHeight + 2
	cardGap         = 1
	headerHeight    = 2

	// buttonLine is the inner line the Add to Cart control is drawn on.
	buttonLine = 2

	wheelStep = 3
)

var (
	white = lipgloss.Color("#ffffff")
	black = lipgloss.Color("#000000")

	headerStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(white)
	spinnerTint = lipgloss.NewStyle().Foreground(lipgloss.Color(view.Palette[4].Hex))

	buttonStyle = lipgloss.NewStyle().
			Background(white).
			Foreground(black).
			Bold(true).
			Padding(0, 1)

	priceStyle = lipgloss.NewStyle().
			Background(black).
			Foreground(white).
			Bold(true).
			Padding(0, 1)
)

// cardStyle returns the frame for a card in the given palette color.
// Hovered cards swap to a thick white border of the same size.
func cardStyle(c view.Color, hovered bool) lipgloss.Style {
	bg := lipgloss.Color(c.Hex)
	s := lipgloss.NewStyle().
		Background(bg).
		Foreground(white).
		Padding(0, 1).
		Width(cardInnerWidth + 2).
		Height(cardInnerHeight).
		BorderBackground(bg)
	if hovered {
		return s.Border(lipgloss.ThickBorder()).BorderForeground(white)
	}
	return s.Border(lipgloss.RoundedBorder()).BorderForeground(bg)
}
