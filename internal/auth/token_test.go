package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	userID := uuid.New()
	token, err := manager.Issue(userID, "ops@example.com", model.AppRoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: %s", claims.UserID)
	}
	if claims.Email != "ops@example.com" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
	if claims.Role != model.AppRoleAdmin {
		t.Fatalf("role mismatch: %s", claims.Role)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	manager := NewManager("secret-a", time.Hour)
	token, err := manager.Issue(uuid.New(), "ops@example.com", model.AppRoleDriver)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewManager("secret-b", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected parse to fail with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.Issue(uuid.New(), "ops@example.com", model.AppRoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
