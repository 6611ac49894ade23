package http

import (
	"time"

	"github.com/gounamur/travel-backend/internal/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"incorrect email or password"`
	Reason  string `json:"reason" example:"invalid_credentials"`
	Details any    `json:"details,omitempty"`
}

// RegisterRequest carries email registration fields. Email format and password strength are
// checked by the auth service so their failures keep a dedicated reason.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,max=254" example:"a@b.com"`
	Name     string `json:"name" validate:"omitempty,max=100" example:"Alice"`
	Password string `json:"password" validate:"required,max=128" example:"Abcdef1!"`
}

// LoginRequest accepts a JSON body or an OAuth2 password form (username/password).
type LoginRequest struct {
	Email    string `json:"email" form:"username" example:"a@b.com"`
	Username string `json:"username"`
	Password string `json:"password" form:"password" validate:"required" example:"Abcdef1!"`
}

func (r LoginRequest) login() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string    `json:"token_type" example:"bearer"`
	ExpiresAt   time.Time `json:"expires_at" example:"2024-01-02T09:30:00Z"`
	UserEmail   string    `json:"user_email" example:"a@b.com"`
	UserName    string    `json:"user_name" example:"Alice"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"a@b.com"`
	Name      string    `json:"name" example:"Alice"`
	Role      string    `json:"role" example:"traveler"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
