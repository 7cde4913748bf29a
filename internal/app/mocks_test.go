package app_test

import (
	"context"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

// Function-field mocks for the repository ports. Unset fields fall
// back to empty results.

type mockUserRepo struct {
	getByIDFn     func(ctx context.Context, id int64) (*domain.User, error)
	getByCPFFn    func(ctx context.Context, cpf string) (*domain.User, error)
	getByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	createFn      func(ctx context.Context, u *domain.User) (*domain.User, error)
	updateFn      func(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error)
	listAllFn     func(ctx context.Context) ([]domain.User, error)
	listActiveFn  func(ctx context.Context) ([]domain.User, error)
	countFn       func(ctx context.Context) (int, error)
	countActiveFn func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	if m.getByCPFFn != nil {
		return m.getByCPFFn(ctx, cpf)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	out := *u
	out.ID = 1
	return &out, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) ListActiveWorkers(ctx context.Context) ([]domain.User, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepo) CountActive(ctx context.Context) (int, error) {
	if m.countActiveFn != nil {
		return m.countActiveFn(ctx)
	}
	return 0, nil
}

type mockRecordRepo struct {
	createFn     func(ctx context.Context, r *domain.WeightRecord) (*domain.WeightRecord, error)
	listByUserFn func(ctx context.Context, userID int64, start, end string) ([]domain.WeightRecord, error)
	listAllFn    func(ctx context.Context, start, end string) ([]domain.WeightRecord, error)
}

func (m *mockRecordRepo) Create(ctx context.Context, r *domain.WeightRecord) (*domain.WeightRecord, error) {
	if m.createFn != nil {
		return m.createFn(ctx, r)
	}
	out := *r
	out.ID = 1
	out.CreatedAt = time.Now()
	return &out, nil
}

func (m *mockRecordRepo) ListByUser(ctx context.Context, userID int64, start, end string) ([]domain.WeightRecord, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockRecordRepo) ListAll(ctx context.Context, start, end string) ([]domain.WeightRecord, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, start, end)
	}
	return nil, nil
}

type mockSessionRepo struct {
	createFn func(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	getFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error { return nil }
