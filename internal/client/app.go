package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/tui"
)

// App is the terminal client: a [Backend] driven by the TUI shell.
type App struct {
	backend *Backend
	ui      *tui.TUI
	dataDir string
	logger  *logger.Logger
}

func NewApp(backend *Backend, ui *tui.TUI, dataDir string, logger *logger.Logger) (*App, error) {
	if backend == nil || ui == nil {
		return nil, errors.New("client app: backend and ui are required")
	}
	return &App{backend: backend, ui: ui, dataDir: dataDir, logger: logger}, nil
}

// Run initialises the data directory and blocks in the TUI until the user
// quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if res := a.backend.Initialize(ctx, a.dataDir); !res.Succeeded() {
		return fmt.Errorf("initialize %s: %s", a.dataDir, res.Message)
	}
	a.logger.Info().Str("data_dir", a.dataDir).Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	return err
}
