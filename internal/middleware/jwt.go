package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/craftbridge/platform_be_craftbridge/internal/utils"
)

const TokenCookie = "cb_token"

func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies(TokenCookie)
}

// RequireAuth rejects requests without a valid token and stores the claims'
// user id and role in locals.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return fiber.ErrUnauthorized
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		uid := strings.TrimSpace(claims.UserID)
		if uid == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals("userId", uid)
		c.Locals("role", strings.ToLower(strings.TrimSpace(claims.Role)))
		return c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and treats
// everything else as anonymous. Invalid tokens never fail the request here.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := utils.ParseJWT(secret, tokenStr)
		if err != nil {
			return c.Next()
		}

		if uid := strings.TrimSpace(claims.UserID); uid != "" {
			c.Locals("userId", uid)
			c.Locals("role", strings.ToLower(strings.TrimSpace(claims.Role)))
		}
		return c.Next()
	}
}
