package auth

import (
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	authsvc "github.com/amirasaad/aliasregistry/pkg/service/auth"
	"github.com/amirasaad/aliasregistry/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the token endpoint. It issues tokens for any address and
// is only mounted outside production.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/auth/token", Token(authSvc))
}

// Token issues a signed token for the given address.
// @Summary Issue a development token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenInput true "Address"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/token [post]
func Token(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TokenInput](c)
		if input == nil {
			return err
		}
		token, err := authSvc.GenerateToken(c.Context(), alias.Identity(input.Address))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't issue token", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Token issued", fiber.Map{"token": token})
	}
}
