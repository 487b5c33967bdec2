package view

import (
	"github.com/fairyhunter13/product-card-showcase/internal/model"
)

// Hover is the index of the card under the pointer, or none.
type Hover struct {
	index int
	set   bool
}

// Enter marks card i as hovered.
func (h *Hover) Enter(i int) { h.index, h.set = i, true }

// Leave clears the hover.
func (h *Hover) Leave() { h.index, h.set = 0, false }

// Index returns the hovered card, if any.
func (h Hover) Index() (int, bool) { return h.index, h.set }

// Is reports whether card i is hovered.
func (h Hover) Is(i int) bool { return h.set && h.index == i }

// Card is the render model for one product.
type Card struct {
	Index      int
	Product    model.Product
	Color      Color
	Title      string
	PriceLabel string
	Hovered    bool
}

// Page owns the view state and hover selection of one showcase.
type Page struct {
	state State
	hover Hover
}

// NewPage returns a page in the Loading state with no hover.
func NewPage() *Page {
	return &Page{state: Loading()}
}

// PageFor returns a page over an already resolved state with no hover.
func PageFor(s State) *Page {
	return &Page{state: s}
}

// State returns the current view state.
func (p *Page) State() State { return p.state }

// Hover returns the current hover selection.
func (p *Page) Hover() Hover { return p.hover }

// Resolve applies the load outcome. See State.Resolve.
func (p *Page) Resolve(products []model.Product, err error) error {
	next, terr := p.state.Resolve(products, err)
	if terr != nil {
		return terr
	}
	p.state = next
	p.hover.Leave()
	return nil
}

// PointerEnter hovers card i. It has no effect unless the page is Ready and
// i is a displayed card.
func (p *Page) PointerEnter(i int) bool {
	if p.state.kind != KindReady || i < 0 || i >= len(p.state.products) {
		return false
	}
	p.hover.Enter(i)
	return true
}

// PointerLeave clears the hover.
func (p *Page) PointerLeave() { p.hover.Leave() }

// DetailVisible reports whether card i shows its detail panel.
func (p *Page) DetailVisible(i int) bool {
	return p.state.kind == KindReady && p.hover.Is(i)
}

// Cards returns one card per displayed product. It is empty unless the page
// is Ready.
func (p *Page) Cards() []Card {
	if p.state.kind != KindReady {
		return nil
	}
	cards := make([]Card, len(p.state.products))
	for i, prod := range p.state.products {
		cards[i] = NewCard(i, prod)
		cards[i].Hovered = p.hover.Is(i)
	}
	return cards
}

// NewCard builds the unhovered card for product at position i.
func NewCard(i int, prod model.Product) Card {
	return Card{
		Index:      i,
		Product:    prod,
		Color:      ColorAt(i),
		Title:      TruncateWords(prod.Title, TitleWordLimit),
		PriceLabel: "$" + prod.Price.Decimal.String(),
	}
}
