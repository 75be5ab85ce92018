package client

import "github.com/koji-m/Bluedog/internal/tui"

// Client is a runnable shell around a Backend.
type Client interface {
	Run() error
}

var (
	_ Client      = (*App)(nil)
	_ tui.Backend = (*Backend)(nil)
)
