package app

import (
	"context"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserService encapsulates user management use cases. Create and
// Update are admin-only; the HTTP adapter gates them before calling.
type UserService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewUserService creates a UserService. cost is the bcrypt cost for
// password hashing; zero means bcrypt.DefaultCost.
func NewUserService(users domain.UserRepository, cost int) *UserService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: cost}
}

// CreateUserInput carries the fields of an admin user-creation request.
type CreateUserInput struct {
	CPF       string `json:"cpf"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
	WorkType  string `json:"workType"`
	Email     string `json:"email"`
}

// Create validates and stores a new user. New users are always active.
// A duplicate CPF or email surfaces as a wrapped domain.ErrConflict
// from the repository; it is not pre-checked.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	var fields []string
	if !validCPF(in.CPF) {
		fields = append(fields, "cpf")
	}
	if in.Password == "" {
		fields = append(fields, "password")
	}
	if in.FirstName == "" {
		fields = append(fields, "firstName")
	}
	if in.LastName == "" {
		fields = append(fields, "lastName")
	}
	if in.WorkType != "" && !domain.ValidWorkType(in.WorkType) {
		fields = append(fields, "workType")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		CPF:          in.CPF,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsAdmin:      in.IsAdmin,
		WorkType:     in.WorkType,
		IsActive:     true,
		Email:        in.Email,
	})
}

// UpdateUserInput carries a partial update; nil fields stay unchanged.
type UpdateUserInput struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	IsAdmin   *bool   `json:"isAdmin"`
	WorkType  *string `json:"workType"`
	IsActive  *bool   `json:"isActive"`
	Email     *string `json:"email"`
}

// Update applies a partial update to an existing user. ID and CPF are
// immutable. An empty workType clears the assignment.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	var fields []string
	if in.Password != nil && *in.Password == "" {
		fields = append(fields, "password")
	}
	if in.FirstName != nil && *in.FirstName == "" {
		fields = append(fields, "firstName")
	}
	if in.LastName != nil && *in.LastName == "" {
		fields = append(fields, "lastName")
	}
	if in.WorkType != nil && *in.WorkType != "" && !domain.ValidWorkType(*in.WorkType) {
		fields = append(fields, "workType")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	upd := domain.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsAdmin:   in.IsAdmin,
		WorkType:  in.WorkType,
		IsActive:  in.IsActive,
		Email:     in.Email,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		upd.Password = &h
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListAll returns every user ordered by first name.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// ListActiveWorkers returns active non-admin users ordered by first name.
func (s *UserService) ListActiveWorkers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListActiveWorkers(ctx)
}

// Roster returns the public-safe projection of active workers.
func (s *UserService) Roster(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.ListActiveWorkers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}
