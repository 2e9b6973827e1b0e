package auth_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type TokenRouteTestSuite struct {
	testutils.APITestSuite
}

func TestTokenRouteTestSuite(t *testing.T) {
	suite.Run(t, new(TokenRouteTestSuite))
}

func (s *TokenRouteTestSuite) tokenStatus(cfg *config.App) int {
	s.Cfg = cfg
	s.SetupTest()
	resp := s.MakeRequest(http.MethodPost, "/auth/token", `{"address":"addr-alice"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	return resp.StatusCode
}

func (s *TokenRouteTestSuite) TestMountedWithFlagInDevelopment() {
	cfg := testutils.TestConfig()
	cfg.Env = "development"
	s.Equal(fiber.StatusOK, s.tokenStatus(cfg))
}

func (s *TokenRouteTestSuite) TestAbsentWithoutFlag() {
	cfg := testutils.TestConfig()
	cfg.Env = "development"
	cfg.Auth.DevTokens = false
	s.Equal(fiber.StatusNotFound, s.tokenStatus(cfg))
}

func (s *TokenRouteTestSuite) TestAbsentOutsideDevelopment() {
	for _, env := range []string{"production", "staging", ""} {
		cfg := testutils.TestConfig()
		cfg.Env = env
		s.Equal(fiber.StatusNotFound, s.tokenStatus(cfg), "env %q", env)
	}
}
