package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/JamesKanneh/computer-literacy-app/internal/auth"
	"github.com/JamesKanneh/computer-literacy-app/internal/cli"
	"github.com/JamesKanneh/computer-literacy-app/internal/config"
	"github.com/JamesKanneh/computer-literacy-app/internal/content"
	"github.com/JamesKanneh/computer-literacy-app/internal/logging"
	"github.com/JamesKanneh/computer-literacy-app/internal/progress"
	"github.com/JamesKanneh/computer-literacy-app/internal/quiz"
	"github.com/JamesKanneh/computer-literacy-app/internal/storage"
)

// Application aggregates the stores, services and the interactive menu.
type Application struct {
	cfg    *config.App
	logger zerolog.Logger
	menu   *cli.Menu
	out    io.Writer
}

// New bootstraps config, logger, file stores, static content and services.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Debug().Msg("starting application bootstrap")

	usersStore := storage.NewStore(filepath.Join(cfg.Data.Dir, cfg.Data.UsersFile))
	progressStore := storage.NewStore(filepath.Join(cfg.Data.Dir, cfg.Data.ProgressFile))
	for _, store := range []*storage.Store{usersStore, progressStore} {
		if err := store.Ensure(); err != nil {
			return nil, fmt.Errorf("init store %s: %w", store.Path(), err)
		}
	}

	catalog, err := content.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	bank, err := quiz.NewBank()
	if err != nil {
		return nil, fmt.Errorf("load quiz bank: %w", err)
	}

	authSvc := auth.NewService(auth.NewCredentialStore(usersStore), logger)
	progressSvc := progress.NewStore(progressStore, logger)
	engine := quiz.NewEngine(bank, progressSvc, logger)

	menu := cli.New(authSvc, catalog, engine, progressSvc, cli.Options{
		In:           os.Stdin,
		Out:          os.Stdout,
		ReadPassword: cli.TerminalPasswordReader(os.Stdin, os.Stdout),
	}, logger)

	return &Application{
		cfg:    cfg,
		logger: logger,
		menu:   menu,
		out:    os.Stdout,
	}, nil
}

// Run drives the menu until the user exits or an interrupt arrives. An
// interrupt during input prints a farewell and returns success.
func (a *Application) Run(ctx context.Context) error {
	menuCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.menu.Run(menuCtx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("interrupt received")
		fmt.Fprintln(a.out, "\nInterrupted. Exiting. Goodbye!")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session error: %w", err)
		}
		a.logger.Debug().Msg("session ended")
		return nil
	case <-ctx.Done():
		fmt.Fprintln(a.out, "\nInterrupted. Exiting. Goodbye!")
		return nil
	}
}
