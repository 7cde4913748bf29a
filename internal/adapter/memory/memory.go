// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	records  []domain.WeightRecord
	sessions map[string]*domain.Session

	userIDCounter   int64
	recordIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.RecordRepository = (*RecordRepo)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- UserRepository ---

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// GetByCPF retrieves a user by national identifier.
func (db *DB) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.CPF == cpf {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if email == "" {
		return nil, nil
	}
	for _, u := range db.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

// Create creates a new user. Duplicate CPF or email returns a wrapped
// domain.ErrConflict, matching the Postgres adapter.
func (db *DB) Create(ctx context.Context, in *domain.User) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.CPF == in.CPF {
			return nil, fmt.Errorf("cpf already registered: %w", domain.ErrConflict)
		}
		if in.Email != "" && u.Email == in.Email {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
	}

	db.userIDCounter++
	u := *in
	u.ID = db.userIDCounter
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	db.users = append(db.users, &u)

	out := u
	return &out, nil
}

// Update applies a partial update; returns (nil, nil) when no user
// has the given id.
func (db *DB) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID != id {
			continue
		}
		if upd.Email != nil && *upd.Email != "" {
			for _, other := range db.users {
				if other.ID != id && other.Email == *upd.Email {
					return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
				}
			}
		}
		if upd.Password != nil {
			u.PasswordHash = *upd.Password
		}
		if upd.FirstName != nil {
			u.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			u.LastName = *upd.LastName
		}
		if upd.IsAdmin != nil {
			u.IsAdmin = *upd.IsAdmin
		}
		if upd.WorkType != nil {
			u.WorkType = *upd.WorkType
		}
		if upd.IsActive != nil {
			u.IsActive = *upd.IsActive
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		u.UpdatedAt = time.Now().UTC()
		out := *u
		return &out, nil
	}
	return nil, nil
}

// ListAll returns every user ordered by first name.
func (db *DB) ListAll(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.User, 0, len(db.users))
	for _, u := range db.users {
		out = append(out, *u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

// ListActiveWorkers returns active non-admin users ordered by first name.
func (db *DB) ListActiveWorkers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.User, 0)
	for _, u := range db.users {
		if u.IsActive && !u.IsAdmin {
			out = append(out, *u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// CountActive returns the number of active users, admins included.
func (db *DB) CountActive(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	count := 0
	for _, u := range db.users {
		if u.IsActive {
			count++
		}
	}
	return count, nil
}

// --- RecordRepository ---

// RecordRepo implements weight-record persistence.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo creates a new weight-record repository.
func (db *DB) NewRecordRepo() *RecordRepo {
	return &RecordRepo{db: db}
}

// Create stores a new weight record.
func (rr *RecordRepo) Create(ctx context.Context, in *domain.WeightRecord) (*domain.WeightRecord, error) {
	db := rr.db
	db.mu.Lock()
	defer db.mu.Unlock()

	db.recordIDCounter++
	r := *in
	r.ID = db.recordIDCounter
	r.CreatedAt = time.Now().UTC()
	db.records = append(db.records, r)

	out := r
	return &out, nil
}

// ListByUser returns a user's records, date descending then creation
// time descending. The range filter applies only when both bounds are
// supplied.
func (rr *RecordRepo) ListByUser(ctx context.Context, userID int64, start, end string) ([]domain.WeightRecord, error) {
	db := rr.db
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.WeightRecord, 0)
	filtered := start != "" && end != ""
	for _, r := range db.records {
		if r.UserID != userID {
			continue
		}
		if filtered && (r.Date < start || r.Date > end) {
			continue
		}
		out = append(out, r)
	}
	sortRecords(out)
	return out, nil
}

// ListAll returns every record with the same optional filter and
// ordering as ListByUser.
func (rr *RecordRepo) ListAll(ctx context.Context, start, end string) ([]domain.WeightRecord, error) {
	db := rr.db
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.WeightRecord, 0)
	filtered := start != "" && end != ""
	for _, r := range db.records {
		if filtered && (r.Date < start || r.Date > end) {
			continue
		}
		out = append(out, r)
	}
	sortRecords(out)
	return out, nil
}

func sortRecords(records []domain.WeightRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		out := *s
		return &out, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
