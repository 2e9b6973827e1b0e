package registry

import (
	"net/url"

	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/domain/payment"
	"github.com/amirasaad/aliasregistry/pkg/middleware"
	authsvc "github.com/amirasaad/aliasregistry/pkg/service/auth"
	registrysvc "github.com/amirasaad/aliasregistry/pkg/service/registry"
	"github.com/amirasaad/aliasregistry/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Routes registers the registry endpoints.
func Routes(app *fiber.App, registrySvc *registrysvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/registry/init", protected, Init(registrySvc))
	app.Get("/config", Config(registrySvc))
	app.Post("/aliases", protected, Create(registrySvc, authSvc))
	app.Get("/search", Search(registrySvc))
	app.Get("/aliases/:alias", Show(registrySvc))
	app.Delete("/aliases/:alias", protected, Destroy(registrySvc, authSvc))
	app.Post("/receive", protected, Receive(registrySvc, authSvc))
}

func callerIdentity(c *fiber.Ctx, authSvc *authsvc.Service) (alias.Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		log.Errorf("No JWT in request context for %s", c.Path())
		return "", authsvc.ErrInvalidIdentity
	}
	return authSvc.CurrentIdentity(token)
}

// aliasParam returns the decoded :alias path segment. Aliases may contain
// spaces or slashes, which clients percent-encode.
func aliasParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("alias"))
	if err != nil {
		log.Errorf("Invalid alias path segment %q: %v", c.Params("alias"), err)
		return "", err
	}
	return name, nil
}

func contractRef(in *ContractInput) *alias.ContractRef {
	if in == nil {
		return nil
	}
	return &alias.ContractRef{Address: alias.Identity(in.Address), CodeHash: in.CodeHash}
}

// Init stores the registry configuration.
// @Summary Initialize the registry
// @Tags registry
// @Accept json
// @Produce json
// @Param request body InitInput true "Registry configuration"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /registry/init [post]
// @Security Bearer
func Init(registrySvc *registrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[InitInput](c)
		if input == nil {
			return err
		}
		out, err := registrySvc.Init(c.Context(), alias.InitParams{
			MaxAliasSize:       input.MaxAliasSize,
			TokenContract:      contractRef(input.TokenContract),
			PaymentDestination: contractRef(input.PaymentDestination),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't initialize registry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registry initialized", out)
	}
}

// Config returns the stored registry configuration.
// @Summary Registry configuration
// @Tags registry
// @Produce json
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /config [get]
func Config(registrySvc *registrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := registrySvc.Config(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load config", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Registry config", out)
	}
}

// Create registers an alias for the caller.
// @Summary Create an alias
// @Tags aliases
// @Accept json
// @Produce json
// @Param request body CreateInput true "Alias"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 402 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /aliases [post]
// @Security Bearer
func Create(registrySvc *registrysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := callerIdentity(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		out, err := registrySvc.Create(c.Context(), registrysvc.CreateCommand{
			Owner:     owner,
			Alias:     input.Alias,
			AvatarURL: input.AvatarURL,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create alias", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Alias created", out)
	}
}

// Destroy removes an alias owned by the caller.
// @Summary Destroy an alias
// @Tags aliases
// @Produce json
// @Param alias path string true "Alias"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /aliases/{alias} [delete]
// @Security Bearer
func Destroy(registrySvc *registrysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := callerIdentity(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		name, err := aliasParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid alias", err, fiber.StatusBadRequest)
		}
		out, err := registrySvc.Destroy(c.Context(), caller, name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't destroy alias", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Alias destroyed", out)
	}
}

// Search looks up a record by alias or by owner address.
// @Summary Search aliases
// @Tags aliases
// @Produce json
// @Param search_type query string true "alias or address"
// @Param search_value query string true "Value to search for"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /search [get]
func Search(registrySvc *registrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := registrySvc.Search(c.Context(), c.Query("search_type"), c.Query("search_value"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Search failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Alias found", out)
	}
}

// Show returns the record for an alias.
// @Summary Show an alias
// @Tags aliases
// @Produce json
// @Param alias path string true "Alias"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /aliases/{alias} [get]
func Show(registrySvc *registrysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := aliasParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid alias", err, fiber.StatusBadRequest)
		}
		out, err := registrySvc.Show(c.Context(), name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Alias not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Alias found", out)
	}
}

// Receive handles a token payment notification. The authenticated caller is
// the notifying token contract.
// @Summary Token payment notification
// @Tags registry
// @Accept json
// @Produce json
// @Param request body ReceiveInput true "Payment notification"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 402 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /receive [post]
// @Security Bearer
func Receive(registrySvc *registrysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sender, err := callerIdentity(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[ReceiveInput](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			log.Errorf("Invalid amount %q: %v", input.Amount, err)
			return common.ProblemDetailsJSON(c, "Invalid amount", err, fiber.StatusBadRequest)
		}
		out, err := registrySvc.Receive(c.Context(), payment.Notification{
			Sender:  sender,
			From:    alias.Identity(input.From),
			Amount:  amount,
			Payload: input.Msg,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment rejected", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Alias created", out)
	}
}
