package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Roles carried in the "role" claim of business-scoped tokens.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID uuid.UUID

	// BusinessID scopes the token to a single tenant. Platform-level
	// tokens carry uuid.Nil here.
	BusinessID uuid.UUID

	// Role is the holder's role inside the business (owner, manager, staff).
	Role string

	Issuer   string
	Audience string

	IssuedAt    time.Time
	NotBefore   time.Time
	ExpiresAt   time.Time
	TokenID     string // jti
	Subject     string
	RawFooter   []byte
	RawClaimsJS []byte
}

// GetUserID implements the reqctx.AuthClaims interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetBusinessID implements the reqctx.AuthClaims interface.
func (c *Claims) GetBusinessID() uuid.UUID {
	return c.BusinessID
}

// GetTokenType implements the reqctx.AuthClaims interface.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired implements the reqctx.AuthClaims interface.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
