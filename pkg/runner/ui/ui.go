package ui

import (
	"context"
	"errors"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/tui"
)

// UI opens the interactive dashboard.
type UI struct {
	App     *app.App
	Screens *screens.Set
}

func (d *UI) Do(ctx context.Context) error {
	if d.Screens == nil {
		return errors.New("ui requires a signed-in session")
	}
	var watcher tui.Watcher
	if d.App != nil {
		watcher = d.App
	}
	return tui.Run(ctx, d.Screens, watcher)
}
