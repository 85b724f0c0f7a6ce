package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "logistics.actor"

var ErrUnauthenticated = errors.New("caller is not authenticated")

// Claims identifies the caller. Tokens are issued by the identity provider;
// this service only verifies them.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// Actor builds the kernel actor asserted by the claims.
func (c Claims) Actor() (kernel.Actor, error) {
	userID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("sub: %w", err)
	}

	tenantID, err := kernel.UUIDFromString(c.CompanyID)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("company_id: %w", err)
	}

	role, err := kernel.ParseRole(c.Role)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role, tenantID)
}

// IssueToken signs an HS256 token for actor. It backs the seed command and
// tests; the API never issues tokens.
func IssueToken(secret []byte, actor kernel.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}
	if actor.IsSystem() {
		return "", errors.New("system actors cannot hold tokens")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:      actor.Role().String(),
		CompanyID: actor.TenantID().String(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// JWTConfig configures the bearer token middleware.
type JWTConfig struct {
	Skipper middleware.Skipper
	Secret  []byte
}

// JWT verifies the bearer token and stores the caller's actor in the echo
// context. Requests without a valid token get 401.
func JWT(cfg JWTConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return cfg.Secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || raw == "" {
				return unauthorized(c, "missing bearer token")
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				return unauthorized(c, "invalid bearer token")
			}

			actor, err := claims.Actor()
			if err != nil {
				return unauthorized(c, "invalid token claims")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// ActorFrom returns the actor stored by JWT.
func ActorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, ErrUnauthenticated
	}
	return actor, nil
}

func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
