package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	pasetotoken "github.com/trimsy-app/trimsy_backend/pkg/paseto"
	"github.com/trimsy-app/trimsy_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token.
// On success, stores *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims)
// and attaches them to the request context so services can identify the actor.
func AuthRequired(mgr *pasetotoken.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}
