package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"inbot/internal/auth"
)

const (
	// UserIDLocalKey holds the authenticated user id.
	UserIDLocalKey = "user_id"
	// ClaimsLocalKey holds the verified *auth.Claims.
	ClaimsLocalKey = "auth_claims"
)

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// Auth rejects requests without a valid, unrevoked bearer token with 401 before any
// downstream handler runs. The global error handler renders the envelope.
func Auth(tokens TokenParser, revocations auth.RevocationStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		const prefix = "Bearer "
		if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization scheme")
		}

		claims, err := tokens.Parse(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		revoked, err := revocations.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return err
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "token has been revoked")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// UserID returns the id stored by Auth, or "" outside the gate.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}

// Claims returns the claims stored by Auth, or nil outside the gate.
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims
}
