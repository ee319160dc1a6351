package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lunisolar-api/internal/config"
	"github.com/phrazzld/lunisolar-api/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	conversionService service.ConversionService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:            cfg,
		logger:            logger,
		conversionService: service.NewConversionService(logger),
	}
}

// Run starts the application server and blocks until it shuts down.
// It returns an error if the server fails to start or to shut down cleanly.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
