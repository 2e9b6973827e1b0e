package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/aliasregistry/infra/initializer"
	"github.com/amirasaad/aliasregistry/pkg/app"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/webapi"
	log "github.com/charmbracelet/log"
)

// @title Alias Registry API
// @version 1.0.0
// @description Alias registry API documentation
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	logger := slog.Default()
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	if err := validateServerConfig(cfg); err != nil {
		return err
	}

	// Initialize all dependencies
	deps, closer, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer closer()
	logger = deps.Logger

	// Create the application
	app := app.New(deps, cfg)
	if err := initializer.AutoInit(context.Background(), app.RegistryService, cfg.Registry, logger); err != nil {
		return fmt.Errorf("failed to auto initialize registry: %w", err)
	}

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app)

	// Start the server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}

// validateServerConfig rejects configurations the HTTP server cannot run
// with: every mutating route is JWT protected.
func validateServerConfig(cfg *config.App) error {
	if cfg.Auth == nil || cfg.Auth.Jwt == nil || cfg.Auth.Jwt.Secret == "" {
		return errors.New("AUTH_JWT_SECRET is required to serve the HTTP API")
	}
	if cfg.Server == nil {
		return errors.New("server configuration is missing")
	}
	return nil
}
