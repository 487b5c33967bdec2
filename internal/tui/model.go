// Package tui renders the product showcase as an interactive terminal view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
	"github.com/fairyhunter13/product-card-showcase/internal/view"
)

// startLoadMsg asks the model to begin its one load.
type startLoadMsg struct{}

// loadedMsg delivers a finished load.
type loadedMsg struct{ res catalog.Result }

// Model is the bubbletea model of the showcase.
type Model struct {
	ctx     context.Context
	fetcher catalog.Fetcher
	seq     *catalog.Sequencer
	task    *catalog.Task
	closed  bool

	page    *view.Page
	spinner spinner.Model
	layout  layout
	scroll  scrollArea
	width   int
	height  int
}

// New creates a model that loads from f when the program starts. ctx bounds
// the load; cancelling it has the same effect as quitting.
func New(ctx context.Context, f catalog.Fetcher) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Pulse
	sp.Style = spinnerTint
	return Model{
		ctx:     ctx,
		fetcher: f,
		seq:     &catalog.Sequencer{},
		page:    view.NewPage(),
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Page exposes the view state for inspection.
func (m Model) Page() *view.Page { return m.page }

// Init starts the spinner and requests the load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return startLoadMsg{} },
	)
}

// Close cancels any in-flight load and stops accepting results.
func (m *Model) Close() {
	m.closed = true
	if m.task != nil {
		m.task.Cancel()
	}
}

func waitForResult(t *catalog.Task) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{res: <-t.Done()}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startLoadMsg:
		if m.task != nil || m.closed {
			return m, nil
		}
		m.task = catalog.Start(m.ctx, m.seq, m.fetcher)
		obs.Logger.Debug("catalog_load_started", zap.Uint64("token", m.task.Token()))
		return m, waitForResult(m.task)

	case loadedMsg:
		m.applyResult(msg.res)
		m.relayout()
		return m, nil

	case spinner.TickMsg:
		if m.page.State().Kind() != view.KindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.BlurMsg:
		m.page.PointerLeave()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) applyResult(res catalog.Result) {
	if m.closed || m.task == nil || res.Token != m.task.Token() || res.Cancelled() {
		obs.Logger.Debug("stale_load_result_dropped", zap.Uint64("token", res.Token))
		return
	}
	if err := m.page.Resolve(res.Products, res.Err); err != nil {
		obs.Logger.Warn("view_transition_rejected", zap.Error(err))
		return
	}
	obs.Logger.Info("view_state_changed",
		zap.String("state", m.page.State().Kind().String()),
		zap.Int("cards", len(m.page.Cards())),
	)
}

func (m *Model) relayout() {
	m.layout = computeLayout(m.width, len(m.page.Cards()))
	m.scroll.height = m.height - headerHeight
	if m.scroll.height < 1 {
		m.scroll.height = 1
	}
	m.scrollTo(m.scroll.offset)
}

func (m *Model) scrollTo(offset int) {
	m.scroll.offset = m.scroll.clamp(offset, m.layout.height())
}

// ensureVisible scrolls the least distance that brings card i fully on screen.
func (m *Model) ensureVisible(i int) {
	if i < 0 || i >= len(m.layout.frames) {
		return
	}
	r := m.layout.frames[i]
	switch {
	case r.y < m.scroll.offset:
		m.scrollTo(r.y)
	case r.y+r.h > m.scroll.offset+m.scroll.height:
		m.scrollTo(r.y + r.h - m.scroll.height)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hoverAt(msg.X, msg.Y)
	case msg.Action != tea.MouseActionPress:
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollTo(m.scroll.offset - wheelStep)
		m.hoverAt(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollTo(m.scroll.offset + wheelStep)
		m.hoverAt(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonLeft:
		idx, line, ok := m.hitScreen(msg.X, msg.Y)
		if ok && line == buttonLine && m.page.DetailVisible(idx) {
			m.addToCart(idx)
		}
	}
}

// hitScreen hit-tests a screen cell against the scrolled grid.
func (m *Model) hitScreen(x, y int) (idx, line int, ok bool) {
	cy, inGrid := m.scroll.toContent(y)
	if !inGrid {
		return -1, -1, false
	}
	return m.layout.hit(x, cy)
}

// hoverAt makes the card under the pointer the hovered one, or clears hover
// when the pointer is over no card.
func (m *Model) hoverAt(x, y int) {
	idx, _, ok := m.hitScreen(x, y)
	if !ok {
		m.page.PointerLeave()
		return
	}
	m.page.PointerEnter(idx)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "right", "tab", "l":
		m.moveHover(1)
	case "left", "shift+tab", "h":
		m.moveHover(-1)
	case "up", "k":
		m.scrollTo(m.scroll.offset - 1)
	case "down", "j":
		m.scrollTo(m.scroll.offset + 1)
	case "pgup":
		m.scrollTo(m.scroll.offset - m.scroll.height)
	case "pgdown", " ":
		m.scrollTo(m.scroll.offset + m.scroll.height)
	case "esc":
		m.page.PointerLeave()
	case "enter":
		if i, ok := m.page.Hover().Index(); ok {
			m.addToCart(i)
		}
	}
	return m, nil
}

func (m *Model) moveHover(delta int) {
	n := len(m.page.Cards())
	if n == 0 {
		return
	}
	i, ok := m.page.Hover().Index()
	switch {
	case !ok && delta > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = ((i+delta)%n + n) % n
	}
	m.page.PointerEnter(i)
	m.ensureVisible(i)
}

func (m *Model) addToCart(i int) {
	cards := m.page.Cards()
	if i < 0 || i >= len(cards) {
		return
	}
	obs.Logger.Info("add_to_cart_clicked", zap.Int("product_id", cards[i].Product.ID))
}
