package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/store"
	pasetotoken "github.com/trimsy-app/trimsy_backend/pkg/paseto"
)

const LocalsBusinessID = "business_id"

// BusinessHeader reads the tenant ID from the X-Business-ID header, validates
// the business exists and is active, and stores the id in Locals for
// downstream handlers. When the request carries an authenticated token that
// is scoped to a business, the token scope must match the header.
func BusinessHeader(db *store.Store) fiber.Handler {
	return func(c fiber.Ctx) error {
		idStr := c.Get("X-Business-ID")
		if idStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "X-Business-ID header is required")
		}

		businessID, err := uuid.Parse(idStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid X-Business-ID value")
		}

		exists, err := db.ActiveBusinessExists(c.Context(), businessID)
		if err != nil {
			return err
		}
		if !exists {
			return fiber.ErrNotFound
		}

		// Tenant-scoped tokens may only act inside their own business.
		if claims, ok := pasetotoken.ClaimsFromFiber(c); ok {
			if claims.BusinessID != uuid.Nil && claims.BusinessID != businessID {
				return fiber.ErrForbidden
			}
		}

		c.Locals(LocalsBusinessID, businessID.String())
		return c.Next()
	}
}
