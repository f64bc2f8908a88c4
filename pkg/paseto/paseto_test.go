package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	mgr, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "trimsy-test",
		Audience:  "trimsy-api",
		AccessTTL: 5 * time.Minute,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return mgr
}

func TestIssueAndVerifyAccess(t *testing.T) {
	mgr := newTestManager(t)

	userID := uuid.New()
	businessID := uuid.New()

	token, err := mgr.IssueAccess(userID, businessID, RoleManager)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want access", claims.Type)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.BusinessID != businessID {
		t.Errorf("BusinessID = %v, want %v", claims.BusinessID, businessID)
	}
	if claims.Role != RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, RoleManager)
	}
	if claims.IsExpired() {
		t.Error("fresh token reports expired")
	}
}

func TestIssueAccessPlatformToken(t *testing.T) {
	mgr := newTestManager(t)

	token, err := mgr.IssueAccess(uuid.New(), uuid.Nil, "")
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.BusinessID != uuid.Nil {
		t.Errorf("BusinessID = %v, want Nil for platform token", claims.BusinessID)
	}
	if claims.Role != "" {
		t.Errorf("Role = %q, want empty", claims.Role)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr := newTestManager(t)

	if _, err := mgr.Verify("v4.local.notarealtoken"); err == nil {
		t.Error("Verify() accepted a malformed token")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	mgr := newTestManager(t)
	other := newTestManager(t)

	token, err := other.IssueAccess(uuid.New(), uuid.Nil, "")
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := mgr.Verify(token); err == nil {
		t.Error("Verify() accepted a token encrypted with a different key")
	}
}
