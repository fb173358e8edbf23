package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type stubUserStore struct {
	firstAdminErr error
	created       []*model.User
}

func (s *stubUserStore) List(ctx context.Context) ([]model.User, error) { return nil, nil }

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, nil
}

func (s *stubUserStore) Count(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubUserStore) Create(ctx context.Context, user *model.User) error {
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserStore) CreateFirstAdmin(ctx context.Context, user *model.User) error {
	if s.firstAdminErr != nil {
		return s.firstAdminErr
	}
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestBootstrapAdminCreatesFirstAccount(t *testing.T) {
	store := &stubUserStore{}
	svc := NewAuthService(store, nil)

	user, err := svc.BootstrapAdmin(context.Background(), "Boss@Example.com", "long-enough-pass")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if user.Role != model.AppRoleAdmin {
		t.Fatalf("bootstrap role = %s, want admin", user.Role)
	}
	if user.Email != "boss@example.com" {
		t.Fatalf("bootstrap email = %q", user.Email)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected exactly one account, got %d", len(store.created))
	}
}

func TestBootstrapAdminRefusedOnceUsersExist(t *testing.T) {
	store := &stubUserStore{firstAdminErr: repository.ErrUsersExist}
	svc := NewAuthService(store, nil)

	if _, err := svc.BootstrapAdmin(context.Background(), "late@example.com", "long-enough-pass"); err != ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied once a user exists, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("refused bootstrap must not create an account")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Ops@Example.COM "); got != "ops@example.com" {
		t.Fatalf("normalizeEmail: %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"ops@example.com", "a@b.co", "driver.one@fleet.example.org"}
	for _, email := range valid {
		if !validEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "ops@", "ops@example", "ops@@example.com", "ops@.com"}
	for _, email := range invalid {
		if validEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}
