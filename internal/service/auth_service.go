package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleet-service/internal/auth"
	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

const minPasswordLength = 6

// UserStore is the account persistence surface the service drives.
// *repository.UserRepository implements it.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *model.User) error
	CreateFirstAdmin(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuthService struct {
	userRepo UserStore
	tokens   *auth.Manager
}

func NewAuthService(userRepo UserStore, tokens *auth.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type LoginResult struct {
	Token string        `json:"token"`
	Role  model.AppRole `json:"role"`
	Email string        `json:"email"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Role: user.Role, Email: user.Email}, nil
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     model.AppRole
}

// CreateUser provisions a staff account. Admins may always create
// accounts; anyone may create the very first one so a fresh install is
// not locked out.
func (s *AuthService) CreateUser(ctx context.Context, principal model.Principal, input CreateUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrPermissionDenied
		}
	}

	user, err := s.buildUser(input)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// BootstrapAdmin creates the first admin account. It succeeds exactly
// once; any existing account makes it fail permanently.
func (s *AuthService) BootstrapAdmin(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.buildUser(CreateUserInput{
		Email:    email,
		Password: password,
		Role:     model.AppRoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateFirstAdmin(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsersExist) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.userRepo.List(ctx)
}

func (s *AuthService) DeleteUser(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if principal.UserID == id {
		return ErrConflict
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *AuthService) buildUser(input CreateUserInput) (*model.User, error) {
	email := normalizeEmail(input.Email)
	if !validEmail(email) {
		return nil, ErrInvalidInput
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrInvalidInput
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
