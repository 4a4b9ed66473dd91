package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/trattoria/internal/client/config"
	"github.com/dmitrijs2005/trattoria/internal/client/remote"
	"github.com/dmitrijs2005/trattoria/internal/client/store"
	"github.com/dmitrijs2005/trattoria/internal/client/substrate"
	"github.com/dmitrijs2005/trattoria/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	store  store.Store
	api    *remote.Client
	Mode   Mode
	reader *bufio.Reader
}

// NewApp builds the CLI around the store backend selected in cfg. The
// sqlite backend requires a driver import at the composition root.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	s, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Printf("error initializing store: %s", err.Error())
		return nil, err
	}

	api := remote.NewClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)

	return &App{
		config: cfg,
		store:  s,
		api:    api,
		Mode:   ModeOffline,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (store.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.OpenKV(substrate.NewMemory(), logger), nil
	case config.StoreFile:
		sub, err := substrate.NewFile(cfg.StateFile)
		if err != nil {
			return nil, err
		}
		return store.OpenKV(sub, logger), nil
	case config.StoreSQLite:
		return store.OpenSQLite(ctx, cfg.DatabaseDSN, logger)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store)
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// refreshMode probes the sync server once and updates the connectivity mode.
func (a *App) refreshMode(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			log.Printf("error closing store: %s", err.Error())
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.ActiveUser(context.Background()) != ""
}
