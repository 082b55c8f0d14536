package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kwawicks/kwawicks-api/internal/application/dto"
	pkgjwt "github.com/kwawicks/kwawicks-api/pkg/jwt"
	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUsername = "username"
	LocalGroups   = "groups"
)

// TokenVerifier validates a bearer token. *pkgjwt.Verifier implements it.
type TokenVerifier interface {
	Parse(ctx context.Context, token string) (*pkgjwt.Claims, error)
}

// AuthMiddleware validates the bearer token and stores the caller's username and groups in c.Locals.
func AuthMiddleware(v TokenVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header is required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		claims, err := v.Parse(c.UserContext(), tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		groups := claims.Groups
		if groups == nil {
			groups = []string{}
		}
		c.Locals(LocalUsername, claims.Principal())
		c.Locals(LocalGroups, groups)
		return c.Next()
	}
}

// RequireGroup lets the request through when the caller belongs to any of groups.
// Must run after AuthMiddleware.
func RequireGroup(groups ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, have := range GetGroups(c) {
			for _, want := range groups {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: CodeForbidden, Message: "insufficient permissions"})
	}
}

// GetUsername returns the caller's username (after AuthMiddleware).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetGroups returns the caller's user pool groups (after AuthMiddleware).
func GetGroups(c *fiber.Ctx) []string {
	g, _ := c.Locals(LocalGroups).([]string)
	return g
}
