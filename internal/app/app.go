package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/internquest/internquest/internal/auth"
	"github.com/internquest/internquest/internal/config"
	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/internal/lookup"
)

// App is the dependency container for the CLI application
type App struct {
	Gateway    gateway.Gateway
	Auth       auth.Service
	Lookup     *lookup.Client
	Config     *config.Config
	HTTPClient *http.Client

	store *gateway.SQLiteGateway
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	dataDir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	if config.AppConfig.DataDir != "" {
		dataDir = config.AppConfig.DataDir
	}

	store, err := gateway.OpenSQLite(filepath.Join(dataDir, "internquest.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gateway store: %w", err)
	}
	if err := store.Ping(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to ping gateway store: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	return &App{
		Gateway:    store,
		Auth:       auth.NewClient(config.AppConfig.AuthEndpoint, httpClient, dataDir),
		Lookup:     lookup.NewClient(config.AppConfig.LookupEndpoint, httpClient),
		Config:     config.AppConfig,
		HTTPClient: httpClient,
		store:      store,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// StudentID returns the configured student id, preferring the signed-in
// session's user id when available.
func (a *App) StudentID(ctx context.Context) (string, error) {
	if session, err := a.Auth.CurrentUser(ctx); err == nil && session.UserID != "" {
		return session.UserID, nil
	}
	if a.Config.StudentID != "" {
		return a.Config.StudentID, nil
	}
	return "", ErrNotSignedIn
}
