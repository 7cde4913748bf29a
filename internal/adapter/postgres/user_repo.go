package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

const userColumns = "id, cpf, password_hash, first_name, last_name, is_admin, work_type, is_active, email, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	var workType, email sql.NullString
	err := row.Scan(&u.ID, &u.CPF, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsAdmin, &workType, &u.IsActive, &email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.WorkType = workType.String
	u.Email = email.String
	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// GetByCPF retrieves a user by national identifier.
func (d *DB) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE cpf = $1", cpf))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// GetByEmail retrieves a user by email.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// Create inserts a new user. A duplicate CPF or email is returned as a
// wrapped domain.ErrConflict.
func (d *DB) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now()
	out, err := scanUser(d.sql.QueryRowContext(ctx,
		`INSERT INTO users (cpf, password_hash, first_name, last_name, is_admin, work_type, is_active, email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING `+userColumns,
		u.CPF, u.PasswordHash, u.FirstName, u.LastName, u.IsAdmin,
		nullable(u.WorkType), u.IsActive, nullable(u.Email), now, now))
	if err != nil {
		return nil, mapConflict(err)
	}
	return out, nil
}

// Update applies a partial update. Returns (nil, nil) when no user has
// the given id. ID and CPF are never updated.
func (d *DB) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	sets := []string{"updated_at = $1"}
	args := []any{time.Now()}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Password != nil {
		add("password_hash", *upd.Password)
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.IsAdmin != nil {
		add("is_admin", *upd.IsAdmin)
	}
	if upd.WorkType != nil {
		add("work_type", nullable(*upd.WorkType))
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if upd.Email != nil {
		add("email", nullable(*upd.Email))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns)

	u, err := scanUser(d.sql.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapConflict(err)
	}
	return u, nil
}

// ListAll returns every user ordered by first name.
func (d *DB) ListAll(ctx context.Context) ([]domain.User, error) {
	return d.listUsers(ctx, "SELECT "+userColumns+" FROM users ORDER BY first_name")
}

// ListActiveWorkers returns active non-admin users ordered by first name.
func (d *DB) ListActiveWorkers(ctx context.Context) ([]domain.User, error) {
	return d.listUsers(ctx,
		"SELECT "+userColumns+" FROM users WHERE is_active AND NOT is_admin ORDER BY first_name")
}

func (d *DB) listUsers(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

// Count returns the total number of users.
func (d *DB) Count(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// CountActive returns the number of active users, admins included.
func (d *DB) CountActive(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE is_active").Scan(&count)
	return count, err
}
