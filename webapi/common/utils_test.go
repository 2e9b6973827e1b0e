package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want int
	}{
		{alias.ErrTooLong, fiber.StatusBadRequest},
		{alias.ErrBadSearchType, fiber.StatusBadRequest},
		{alias.ErrAliasTaken, fiber.StatusConflict},
		{fmt.Errorf("wrapped: %w", alias.ErrOwnerHasAlias), fiber.StatusConflict},
		{alias.ErrAliasNotFound, fiber.StatusNotFound},
		{alias.ErrConfigNotFound, fiber.StatusNotFound},
		{alias.ErrNotOwner, fiber.StatusForbidden},
		{auth.ErrInvalidIdentity, fiber.StatusUnauthorized},
		{payment.ErrWrongToken, fiber.StatusPaymentRequired},
		{payment.ErrWrongAmount, fiber.StatusPaymentRequired},
		{payment.ErrInvalidPayload, fiber.StatusBadRequest},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("boom"), fiber.StatusInternalServerError},
		{nil, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ErrorToStatusCode(tc.err), "%v", tc.err)
	}
}

type bindInput struct {
	Alias string `json:"alias" validate:"required"`
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[bindInput](c)
		if input == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "ok", input)
	})

	send := func(body string) (*http.Response, map[string]any) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp, out
	}

	resp, out := send(`{"alias":"alice"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ok", out["message"])

	resp, out = send(`{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Validation failed", out["title"])
	assert.Equal(t, map[string]any{"Alias": "required"}, out["errors"])

	resp, _ = send(`{not json`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProblemDetailsJSON_CarriesDomainCode(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Create failed", alias.ErrAliasTaken)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "alias_taken", pd.Code)
	assert.Equal(t, "alias already taken", pd.Detail)
	assert.Equal(t, "/", pd.Instance)
}
