package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fairyhunter13/product-card-showcase/internal/catalog"
)

// Run starts the terminal showcase and blocks until the user quits or ctx
// ends. Any load still in flight is cancelled on return.
func Run(ctx context.Context, f catalog.Fetcher, opts ...tea.ProgramOption) error {
	m := New(ctx, f)
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}, opts...)
	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal view: %w", err)
	}
	return nil
}
