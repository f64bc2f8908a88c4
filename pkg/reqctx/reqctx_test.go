package reqctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID     uuid.UUID
	businessID uuid.UUID
	tokenType  string
	expired    bool
}

func (s stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s stubClaims) GetBusinessID() uuid.UUID { return s.businessID }
func (s stubClaims) GetTokenType() string     { return s.tokenType }
func (s stubClaims) IsExpired() bool          { return s.expired }

func TestClaimsRoundTrip(t *testing.T) {
	uid := uuid.New()
	bid := uuid.New()
	ctx := WithClaims(context.Background(), stubClaims{userID: uid, businessID: bid, tokenType: "access"})

	claims := ClaimsFromContext(ctx)
	if claims == nil {
		t.Fatal("ClaimsFromContext() = nil after WithClaims")
	}
	if claims.GetUserID() != uid {
		t.Errorf("GetUserID() = %v, want %v", claims.GetUserID(), uid)
	}
	if claims.GetBusinessID() != bid {
		t.Errorf("GetBusinessID() = %v, want %v", claims.GetBusinessID(), bid)
	}
	if !IsAuthenticated(ctx) {
		t.Error("IsAuthenticated() = false for valid claims")
	}

	actor, ok := UserIDFromContext(ctx)
	if !ok || actor != uid {
		t.Errorf("UserIDFromContext() = %v, %v, want %v, true", actor, ok, uid)
	}
}

func TestClaimsAbsent(t *testing.T) {
	ctx := context.Background()

	if ClaimsFromContext(ctx) != nil {
		t.Error("ClaimsFromContext() != nil on a bare context")
	}
	if IsAuthenticated(ctx) {
		t.Error("IsAuthenticated() = true on a bare context")
	}
	if actor, ok := UserIDFromContext(ctx); ok || actor != uuid.Nil {
		t.Errorf("UserIDFromContext() = %v, %v, want Nil, false", actor, ok)
	}
}

func TestExpiredClaimsNotAuthenticated(t *testing.T) {
	ctx := WithClaims(context.Background(), stubClaims{userID: uuid.New(), expired: true})
	if IsAuthenticated(ctx) {
		t.Error("IsAuthenticated() = true for expired claims")
	}
}

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{RequestID: "req-1", ClientIP: "10.0.0.1"}
	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok || got.RequestID != "req-1" {
		t.Fatalf("RequestMetaFromContext() = %+v, %v", got, ok)
	}
	if RequestIDFromContext(ctx) != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want %q", RequestIDFromContext(ctx), "req-1")
	}
}
