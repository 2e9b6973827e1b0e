// Package auth resolves the acting identity of a request. The JWT strategy
// reads the caller's address from a signed token; the basic strategy takes it
// from the context and is used by the CLI.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/aliasregistry/pkg/config"
	"github.com/amirasaad/aliasregistry/pkg/domain"
	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityContextKey contextKey = "identity"

// ErrInvalidIdentity is returned when a request carries no usable identity.
var ErrInvalidIdentity = domain.New(domain.KindUnauthorized, "invalid_identity", "missing or invalid caller identity")

// WithIdentity returns a context carrying identity for the basic strategy.
func WithIdentity(ctx context.Context, identity alias.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// WithToken returns a context carrying a parsed JWT for the JWT strategy.
func WithToken(ctx context.Context, token *jwt.Token) context.Context {
	return context.WithValue(ctx, identityContextKey, token)
}

type Strategy interface {
	CurrentIdentity(ctx context.Context) (alias.Identity, error)
	GenerateToken(ctx context.Context, identity alias.Identity) (string, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

func NewWithBasic(logger *slog.Logger) *Service {
	return New(&BasicAuthStrategy{logger: logger}, logger)
}

func NewWithJWT(cfg *config.Jwt, logger *slog.Logger) *Service {
	return New(&JWTStrategy{cfg: cfg, logger: logger}, logger)
}

// CurrentIdentity returns the identity of the caller that sent token.
func (s *Service) CurrentIdentity(token *jwt.Token) (identity alias.Identity, err error) {
	log := s.logger.With("context", "CurrentIdentity")
	log.Debug("CurrentIdentity called")
	identity, err = s.strategy.CurrentIdentity(WithToken(context.Background(), token))
	if err != nil {
		log.Error("CurrentIdentity failed", "error", err)
		return
	}
	log.Debug("CurrentIdentity successful", "identity", identity)
	return
}

// IdentityFromContext resolves the caller from ctx with the configured strategy.
func (s *Service) IdentityFromContext(ctx context.Context) (alias.Identity, error) {
	return s.strategy.CurrentIdentity(ctx)
}

func (s *Service) GenerateToken(ctx context.Context, identity alias.Identity) (string, error) {
	log := s.logger.With("identity", identity)
	log.Debug("GenerateToken called")
	if identity.IsZero() {
		log.Error("GenerateToken failed", "error", ErrInvalidIdentity)
		return "", ErrInvalidIdentity
	}
	token, err := s.strategy.GenerateToken(ctx, identity)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return token, nil
}

// JWTStrategy reads the identity from the configured claim of an HS256 token.
type JWTStrategy struct {
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(cfg *config.Jwt, logger *slog.Logger) *JWTStrategy {
	return &JWTStrategy{cfg: cfg, logger: logger}
}

func (s *JWTStrategy) claim() string {
	if s.cfg.Claim == "" {
		return "address"
	}
	return s.cfg.Claim
}

func (s *JWTStrategy) GenerateToken(ctx context.Context, identity alias.Identity) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims[s.claim()] = identity.String()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *JWTStrategy) CurrentIdentity(ctx context.Context) (alias.Identity, error) {
	log := s.logger.With("context", "CurrentIdentity")
	token, ok := ctx.Value(identityContextKey).(*jwt.Token)
	if !ok || token == nil || !token.Valid {
		log.Error("CurrentIdentity failed: no valid token")
		return "", ErrInvalidIdentity
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Error("CurrentIdentity failed: unexpected claims type")
		return "", ErrInvalidIdentity
	}
	raw, ok := claims[s.claim()].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		log.Error("CurrentIdentity failed: claim missing", "claim", s.claim())
		return "", ErrInvalidIdentity
	}
	return alias.Identity(strings.TrimSpace(raw)), nil
}

// BasicAuthStrategy trusts the identity placed in the context by the caller.
// It is meant for the CLI, which acts on behalf of the local operator.
type BasicAuthStrategy struct {
	logger *slog.Logger
}

func NewBasicAuthStrategy(logger *slog.Logger) *BasicAuthStrategy {
	return &BasicAuthStrategy{logger: logger}
}

func (s *BasicAuthStrategy) CurrentIdentity(ctx context.Context) (alias.Identity, error) {
	identity, ok := ctx.Value(identityContextKey).(alias.Identity)
	if !ok || identity.IsZero() {
		s.logger.Error("CurrentIdentity failed", "error", ErrInvalidIdentity)
		return "", ErrInvalidIdentity
	}
	return identity, nil
}

func (s *BasicAuthStrategy) GenerateToken(ctx context.Context, identity alias.Identity) (string, error) {
	return "", nil // No token for basic auth
}
