// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrConflict is returned (wrapped) by repositories when an insert or
// update violates a uniqueness constraint, e.g. a duplicate CPF.
var ErrConflict = errors.New("conflict")

// Work types a worker can be assigned to. A user without a work type
// (e.g. an office admin) has an empty WorkType.
const (
	WorkTypeFiletagem   = "filetagem"
	WorkTypeEvisceracao = "evisceracao"
)

// ValidWorkType reports whether s is one of the two known work types.
func ValidWorkType(s string) bool {
	return s == WorkTypeFiletagem || s == WorkTypeEvisceracao
}

// User represents a worker or administrator. CPF is the 11-digit
// national identifier and is unique across all users.
type User struct {
	ID           int64     `json:"id"`
	CPF          string    `json:"cpf"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	IsAdmin      bool      `json:"isAdmin"`
	WorkType     string    `json:"workType,omitempty"`
	IsActive     bool      `json:"isActive"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the roster-safe projection of a User.
type PublicUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	WorkType  string `json:"workType,omitempty"`
}

// Public returns the roster-safe projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, WorkType: u.WorkType}
}

// UserUpdate carries a partial update; nil fields are left unchanged.
// ID and CPF are immutable and therefore absent.
type UserUpdate struct {
	Password  *string
	FirstName *string
	LastName  *string
	IsAdmin   *bool
	WorkType  *string
	IsActive  *bool
	Email     *string
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByCPF(ctx context.Context, cpf string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListActiveWorkers(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}
