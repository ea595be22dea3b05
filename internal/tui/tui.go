package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// WatchFunc blocks until ctx is done, calling fn when the stored collection
// changes underneath the program.
type WatchFunc func(ctx context.Context, fn func()) error

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, st Store, opt Options, watch WatchFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, st, opt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch != nil {
		go func() {
			err := watch(ctx, func() { p.Send(collectionChangedMsg{}) })
			if err != nil {
				m.log.Warn("watch stopped", zap.Error(err))
			}
		}()
	}

	_, err := p.Run()
	return err
}
