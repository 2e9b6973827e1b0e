// Package testutils builds fully wired HTTP apps for the webapi tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	infracache "github.com/amirasaad/aliasregistry/infra/cache"
	infraeventbus "github.com/amirasaad/aliasregistry/infra/eventbus"
	infratoken "github.com/amirasaad/aliasregistry/infra/provider/token"
	"github.com/amirasaad/aliasregistry/infra/repository/memory"
	"github.com/amirasaad/aliasregistry/pkg/app"
	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/metrics"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"github.com/amirasaad/aliasregistry/webapi"
	"github.com/amirasaad/aliasregistry/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// TestConfig returns an app config backed entirely by in-process drivers.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{Driver: "memory"},
		Auth: &config.Auth{
			Strategy:  "jwt",
			Jwt:       &config.Jwt{Secret: "test-secret", Expiry: time.Hour, Claim: "address"},
			DevTokens: true,
		},
		EventBus: &config.EventBus{Driver: "memory"},
		Cache:    &config.Cache{Driver: "memory", TTL: time.Minute, Cleanup: time.Minute},
		Registry: &config.Registry{MaxAliasSize: 65535, BlockSize: 256},
	}
}

// TestApp is a wired application plus the in-process collaborators the
// tests inspect.
type TestApp struct {
	Fiber *fiber.App
	Core  *app.App
	Bus   *infraeventbus.MemoryEventBus
	Relay *infratoken.Relay
}

// NewTestApp wires cfg on top of uow with an in-memory bus, cache and a
// private Prometheus registry.
func NewTestApp(cfg *config.App, uow repository.UnitOfWork) *TestApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infraeventbus.NewWithMemory(logger, infraeventbus.WithRecording())
	relay := infratoken.NewRelay(bus, logger)
	deps := &config.Deps{
		Uow:      uow,
		Token:    relay,
		EventBus: bus,
		Cache:    infracache.NewMemoryCache(time.Minute, time.Minute, logger),
		Metrics:  metrics.New(metrics.WithRegistry(prometheus.NewRegistry())),
		Logger:   logger,
		Config:   cfg,
	}
	core := app.New(deps, cfg)
	return &TestApp{
		Fiber: webapi.SetupApp(core),
		Core:  core,
		Bus:   bus,
		Relay: relay,
	}
}

// APITestSuite runs HTTP tests against a fresh in-memory app per test.
type APITestSuite struct {
	suite.Suite
	Cfg *config.App
	App *TestApp

	// NewUoW overrides the storage used by SetupTest.
	NewUoW func() repository.UnitOfWork
}

func (s *APITestSuite) SetupTest() {
	if s.Cfg == nil {
		s.Cfg = TestConfig()
	}
	var uow repository.UnitOfWork = memory.NewUoW(memory.New())
	if s.NewUoW != nil {
		uow = s.NewUoW()
	}
	s.App = NewTestApp(s.Cfg, uow)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *APITestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Fiber.Test(req, 10000)
	s.Require().NoError(err)
	return resp
}

// TokenFor issues a JWT for address.
func (s *APITestSuite) TokenFor(address string) string {
	token, err := s.App.Core.AuthService.GenerateToken(context.Background(), alias.Identity(address))
	s.Require().NoError(err)
	return token
}

// InitRegistry initializes the registry with body and asserts success.
func (s *APITestSuite) InitRegistry(body string) {
	resp := s.MakeRequest(http.MethodPost, "/registry/init", body, s.TokenFor("admin"))
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
}

// DecodeResponse decodes the success envelope, re-marshalling Data into out.
func (s *APITestSuite) DecodeResponse(resp *http.Response, out any) common.Response {
	var envelope common.Response
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, &envelope))
	if out != nil {
		data, err := json.Marshal(envelope.Data)
		s.Require().NoError(err)
		s.Require().NoError(json.Unmarshal(data, out))
	}
	return envelope
}

// DecodeProblem decodes a problem+json body.
func (s *APITestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	var pd common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}
