// Command aliasctl operates the alias registry directly against the
// configured storage, acting as the identity given by --as.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/aliasregistry/infra/initializer"
	"github.com/amirasaad/aliasregistry/pkg/app"
	"github.com/amirasaad/aliasregistry/pkg/config"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, loadApp).Execute(); err != nil {
		os.Exit(1)
	}
}

// loadApp builds the application from the environment. The CLI always
// resolves identities with the basic strategy.
func loadApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application configuration: %w", err)
	}
	cfg.Auth.Strategy = "basic"

	deps, closer, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)
	if err := initializer.AutoInit(ctx, a.RegistryService, cfg.Registry, deps.Logger); err != nil {
		closer()
		return nil, nil, fmt.Errorf("auto init: %w", err)
	}
	return a, closer, nil
}
