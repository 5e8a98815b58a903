package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/secondchance/secondchance-backend/internal/token"
)

// AccountIDKey is the locals key under which BearerAuth stores the verified
// account id.
const AccountIDKey = "account_id"

// BearerAuth validates the Authorization bearer token and exposes the account
// id from its claim to downstream handlers.
func BearerAuth(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}

		accountID, err := issuer.Parse(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals(AccountIDKey, accountID)
		return c.Next()
	}
}
