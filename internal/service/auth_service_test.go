package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/memory"
	"github.com/gounamur/travel-backend/internal/util"
)

func newAuthService(store *memory.Store, admins ...string) *AuthService {
	return NewAuthService(memory.NewUserRepo(store), util.NewJWTManager("test-secret", 30*time.Minute), admins)
}

func TestAuthService_RegisterAndDuplicate(t *testing.T) {
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "Abcdef1!"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "a@b.com" || user.Name != "a" || user.Role != domain.RoleTraveler {
		t.Fatalf("unexpected user %+v", user)
	}
	if len(user.PasswordHash) == 0 || string(user.PasswordHash) == "Abcdef1!" {
		t.Fatalf("expected password to be hashed")
	}

	if _, err := svc.Register(ctx, RegisterInput{Email: " A@B.com ", Password: "Abcdef1!"}); !errors.Is(err, ErrEmailAlreadyUsed) {
		t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
	}
}

func TestAuthService_RegisterRejectsInput(t *testing.T) {
	svc := newAuthService(memory.NewStore())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "Abcdef1!"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{Email: "weak@b.com", Password: "abc"})
	if !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}
	var policy *PasswordPolicyError
	if !errors.As(err, &policy) {
		t.Fatalf("expected PasswordPolicyError, got %T", err)
	}
	// too short, no uppercase, no digit, no special character
	if len(policy.Problems) != 4 {
		t.Fatalf("expected 4 problems, got %v", policy.Problems)
	}
}

func TestAuthService_AdminEmailsGetAdminRole(t *testing.T) {
	svc := newAuthService(memory.NewStore(), "Boss@Example.com")
	user, err := svc.Register(context.Background(), RegisterInput{Email: "boss@example.com", Name: "Boss", Password: "Abcdef1!"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !user.IsAdmin() {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Name: "Alice", Password: "Abcdef1!"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if _, err := svc.Login(ctx, "a@b.com", "Abcdef1?"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@b.com", "Abcdef1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	result, err := svc.Login(ctx, "A@b.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Token == "" || !result.ExpiresAt.After(time.Now()) {
		t.Fatalf("unexpected login result %+v", result)
	}

	user, err := svc.Authenticate(ctx, result.Token)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("expected Alice, got %q", user.Name)
	}

	if _, err := svc.Authenticate(ctx, "garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for malformed token, got %v", err)
	}

	if err := svc.DeleteAccount(ctx, user.ID); err != nil {
		t.Fatalf("DeleteAccount returned error: %v", err)
	}
	if _, err := svc.Authenticate(ctx, result.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected token of deleted account to be rejected, got %v", err)
	}
	if err := svc.DeleteAccount(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_TokenFromOtherSecretRejected(t *testing.T) {
	store := memory.NewStore()
	svc := newAuthService(store)
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "Abcdef1!"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	forged, _, err := util.NewJWTManager("other-secret", time.Minute).Generate("a@b.com", "admin")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), forged); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
