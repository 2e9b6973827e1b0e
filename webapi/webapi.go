// Package webapi provides the HTTP API of the alias registry.
// It is organized into sub-packages:
// - registry: configuration, alias and payment endpoints
// - auth: development token endpoint
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/aliasregistry/pkg/app"
	"github.com/amirasaad/aliasregistry/pkg/middleware"
	authweb "github.com/amirasaad/aliasregistry/webapi/auth"
	"github.com/amirasaad/aliasregistry/webapi/common"
	registryweb "github.com/amirasaad/aliasregistry/webapi/registry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Padding wraps everything below it, including limiter rejections and
	// unmatched routes.
	if cfg.Registry != nil && cfg.Registry.PadResponses {
		fiberApp.Use(middleware.Pad(cfg.Registry.BlockSize))
	}
	if cfg.RateLimit != nil {
		// Uses X-Forwarded-For header when behind a proxy
		// Falls back to X-Real-IP or direct IP if needed
		fiberApp.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit.MaxRequests,
			Expiration: cfg.RateLimit.Window,
			KeyGenerator: func(c *fiber.Ctx) string {
				if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
					// Take the first IP in the chain
					if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
						return strings.TrimSpace(forwardedFor[:commaIndex])
					}
					return strings.TrimSpace(forwardedFor)
				}
				if realIP := c.Get("X-Real-IP"); realIP != "" {
					return realIP
				}
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Alias registry is running!")
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	registryweb.Routes(fiberApp, app.RegistryService, app.AuthService, cfg)
	if cfg.DevTokensEnabled() {
		authweb.Routes(fiberApp, app.AuthService)
	}
	return fiberApp
}
