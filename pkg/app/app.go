package app

import (
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/service/auth"
	"github.com/amirasaad/aliasregistry/pkg/service/registry"
)

type App struct {
	Deps            *config.Deps
	Config          *config.App
	AuthService     *auth.Service
	RegistryService *registry.Service
}

func New(deps *config.Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	authMap := map[string]func() *auth.Service{
		"jwt": func() *auth.Service {
			return auth.NewWithJWT(cfg.Auth.Jwt, deps.Logger)
		},
	}
	if authFactory, ok := authMap[cfg.Auth.Strategy]; ok && cfg.Auth.Jwt != nil {
		app.AuthService = authFactory()
	} else {
		app.AuthService = auth.NewWithBasic(deps.Logger)
	}
	app.RegistryService = registry.NewService(*deps)
	app.setupEventBus()
	return app
}
