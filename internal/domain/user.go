package domain

import (
	"time"
)

type UserRole string

const (
	RoleTraveler UserRole = "traveler"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash []byte    `db:"password_hash" json:"-"`
	PasswordSalt []byte    `db:"password_salt" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type NewUser struct {
	Email        string
	Name         string
	PasswordHash []byte
	PasswordSalt []byte
	Role         UserRole
}
