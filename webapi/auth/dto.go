package auth

// TokenInput is the request body for POST /auth/token.
type TokenInput struct {
	Address string `json:"address" validate:"required"`
}
