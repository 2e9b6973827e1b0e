//go:build integration

package registry_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/dto"
	"github.com/amirasaad/aliasregistry/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type RegistryE2ETestSuite struct {
	testutils.E2ETestSuite
}

func TestRegistryE2ETestSuite(t *testing.T) {
	suite.Run(t, new(RegistryE2ETestSuite))
}

func (s *RegistryE2ETestSuite) TestOwnershipLifecycle() {
	s.InitRegistry(`{"max_alias_size": 16}`)

	created := s.MakeRequest(http.MethodPost, "/aliases", `{"alias":"Alice"}`, s.TokenFor("addr-alice"))
	defer created.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, created.StatusCode)

	taken := s.MakeRequest(http.MethodPost, "/aliases", `{"alias":"alice"}`, s.TokenFor("addr-bob"))
	defer taken.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusConflict, taken.StatusCode)

	search := s.MakeRequest(http.MethodGet, "/search?search_type=address&search_value=addr-alice", "", "")
	defer search.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, search.StatusCode)
	var found dto.SearchResponse
	s.DecodeResponse(search, &found)
	s.Equal("alice", found.Attributes.Alias)

	destroyed := s.MakeRequest(http.MethodDelete, "/aliases/alice", "", s.TokenFor("addr-alice"))
	defer destroyed.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, destroyed.StatusCode)

	reused := s.MakeRequest(http.MethodPost, "/aliases", `{"alias":"alice"}`, s.TokenFor("addr-bob"))
	defer reused.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusCreated, reused.StatusCode)
}

func (s *RegistryE2ETestSuite) TestPaidCreation() {
	s.InitRegistry(gatedInit)

	msg, err := payment.EncodePayload(payment.CreateRequest{Alias: "bob"})
	s.Require().NoError(err)
	body := `{"from":"addr-bob","amount":"` + payment.FixedPrice.String() + `","msg":"` + msg + `"}`
	resp := s.MakeRequest(http.MethodPost, "/receive", body, s.TokenFor("token"))
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	show := s.MakeRequest(http.MethodGet, "/aliases/bob", "", "")
	defer show.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, show.StatusCode)
}
