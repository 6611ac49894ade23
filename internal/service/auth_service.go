package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
	"github.com/gounamur/travel-backend/internal/repository/ports"
	"github.com/gounamur/travel-backend/internal/util"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooWeak    = errors.New("password does not meet strength requirements")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthorized       = errors.New("invalid or expired token")
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users  ports.UserRepository
	jwt    *util.JWTManager
	admins map[string]struct{}
}

func NewAuthService(users ports.UserRepository, jwtManager *util.JWTManager, adminEmails []string) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}
	return &AuthService{users: users, jwt: jwtManager, admins: admins}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if !util.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if problems := util.PasswordProblems(input.Password); len(problems) > 0 {
		return nil, &PasswordPolicyError{Problems: problems}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyUsed
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}

	hash, salt, err := util.DerivePassword(input.Password)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = email[:strings.IndexByte(email, '@')]
	}
	role := domain.RoleTraveler
	if _, ok := s.admins[email]; ok {
		role = domain.RoleAdmin
	}

	user, err := s.users.Create(ctx, domain.NewUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.Generate(user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a bearer token to its account. Tokens of deleted accounts are
// rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	user, err := s.users.FindByEmail(ctx, normalizeEmail(claims.Email()))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and every favorite the user saved.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
