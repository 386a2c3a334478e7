// Package tea launches the full-screen interface from the CLI.
package tea

import (
	"context"

	"tableflip.dev/studyed/pkg/app"
	teaui "tableflip.dev/studyed/pkg/tui/app"
)

// UI opens the interface on Start.
type UI struct {
	Service *app.Service
	Start   teaui.Page
}

func (u *UI) Do(_ context.Context) error {
	u.Service.Log.Info("ui start", "page", int(u.Start))
	defer u.Service.Log.Info("ui exit")
	return teaui.Run(u.Service, u.Start)
}
