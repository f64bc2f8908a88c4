package middleware

import (
	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/trimsy-app/trimsy_backend/pkg/paseto"
)

// RequireRole allows the request through only when the authenticated token
// carries one of the given roles. Must run after AuthRequired.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
