package tui

import (
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

const (
	loadingLabel = "Loading products..."
	headerTitle  = "Products"
	helpText     = "hover or ←/→ to inspect · ↑/↓ or wheel to scroll · enter: add to cart · q: quit"
	imageGlyph   = "░"
)

// View renders the current state.
func (m Model) View() string {
	st := m.page.State()
	switch st.Kind() {
	case view.KindLoading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+loadingLabel)
	case view.KindError:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(st.Message()))
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(headerTitle))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.MaxWidth(m.width).Render(helpText))
	sb.WriteString("\n")

	vp := viewport.New(m.width, m.scroll.height)
	vp.SetContent(m.gridContent())
	vp.SetYOffset(m.scroll.offset)
	sb.WriteString(vp.View())
	return sb.String()
}

// gridContent renders every card row; the viewport decides which lines show.
func (m Model) gridContent() string {
	cards := m.page.Cards()
	cols := m.layout.cols
	if cols < 1 {
		cols = 1
	}
	pad := strings.Repeat(" ", m.layout.left)
	gap := strings.Repeat(" ", cardGap)
	lines := make([]string, 0, m.layout.height())
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, renderCard(cards[i]))
		}
		if start > 0 {
			lines = append(lines, "")
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		for _, line := range strings.Split(row, "\n") {
			lines = append(lines, pad+line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderCard draws one card. The detail lines are blank unless the card is
// hovered so every card keeps the same size.
func renderCard(c view.Card) string {
	clip := lipgloss.NewStyle().MaxWidth(cardInnerWidth)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(cardInnerWidth, lipgloss.Center, clip.Render(s))
	}

	img := strings.Repeat(imageGlyph, 14)
	lines := make([]string, cardInnerHeight)
	lines[0] = ""
	lines[1] = center(img)
	lines[buttonLine] = center(img)
	lines[3] = center(imageName(c.Product.Thumbnail))
	lines[4] = ""
	if c.Hovered {
		lines[buttonLine] = center(buttonStyle.Render("Add to Cart"))
		lines[5] = clip.Faint(true).Render(c.Product.Category)
		lines[6] = clip.Bold(true).Render(c.Title)
		lines[7] = lipgloss.PlaceHorizontal(cardInnerWidth, lipgloss.Right, priceStyle.Render(c.PriceLabel))
	}
	return cardStyle(c.Color, c.Hovered).Render(strings.Join(lines, "\n"))
}

// imageName is the alt text shown in place of the thumbnail.
func imageName(thumbnail string) string {
	u, err := url.Parse(thumbnail)
	if err != nil || u.Path == "" {
		return "image"
	}
	dir, file := path.Split(u.Path)
	if parent := path.Base(strings.TrimSuffix(dir, "/")); parent != "" && parent != "." && parent != "/" {
		return parent + "/" + file
	}
	return file
}
