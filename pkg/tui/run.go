package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/advcontrol/pkg/screens"
)

// Run starts the dashboard on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, set *screens.Set, watcher Watcher) error {
	m := New(ctx, set, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	m.stopWatch()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
