package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/export"
	"github.com/dmitrijs2005/authkeeper/internal/identity"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/session"
	"github.com/dmitrijs2005/authkeeper/internal/store"
)

// App wires the auth backend, the profile store and the session controller
// into an interactive console client.
type App struct {
	config     *config.Config
	log        logging.Logger
	backend    *identity.GRPCBackend
	store      *store.PostgresStore
	controller *session.Controller
	monitor    *session.InactivityMonitor
	exports    *export.Service
	reader     *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	backend, err := identity.NewGRPCBackend(cfg.IdentityEndpointAddr, logger)
	if err != nil {
		return nil, fmt.Errorf("identity backend: %w", err)
	}

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("profile store: %w", err)
	}

	cb := session.Callbacks{
		OnAuthError: func(err error) {
			fmt.Printf("\nauth notice: %v\n", err)
		},
		OnQuotaWarning: func(kind models.LimitKind, used, limit int) {
			fmt.Printf("\nwarning: %s usage at %d of %d for today\n", kind, used, limit)
		},
	}

	// Zero selects the resolver default; a negative value must not wrap
	// around on conversion.
	attempts := cfg.ResolverAttempts
	if attempts < 0 {
		attempts = 0
	}

	controller := session.NewController(backend, st, logger, session.Config{
		InitTimeout:      cfg.InitTimeout,
		ResolverAttempts: uint64(attempts),
		ResolverDelay:    cfg.ResolverDelay,
	}, cb)

	monitor := session.NewInactivityMonitor(controller, logger, cfg.SessionIdleTimeout, func(remaining time.Duration, renew func()) {
		fmt.Printf("\nyou will be signed out in %s unless you keep working\n", remaining.Round(time.Second))
	})

	return &App{
		config:     cfg,
		log:        logger,
		backend:    backend,
		store:      st,
		controller: controller,
		monitor:    monitor,
		exports:    export.NewService(controller, cfg),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the controller and the inactivity monitor and enters the REPL.
// It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown(ctx)

	if err := a.controller.Start(ctx); err != nil {
		a.log.Error(ctx, "controller start", "error", err)
	}
	a.monitor.Start()

	return a.Root(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	a.monitor.Stop()
	a.controller.Close()
	if err := a.backend.Close(); err != nil {
		a.log.Error(ctx, "closing backend", "error", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Error(ctx, "closing store", "error", err)
	}
}

func (a *App) statusLabel() string {
	if u := a.controller.CurrentUser(); u != nil {
		return fmt.Sprintf("%s (%s)", u.Email, u.Role)
	}
	return a.controller.State().String()
}
