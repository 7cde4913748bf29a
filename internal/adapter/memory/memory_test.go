package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FeliCaldas/WeightTrackPro/internal/adapter/memory"
	"github.com/FeliCaldas/WeightTrackPro/internal/domain"
)

func TestUserLifecycle(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	created, err := db.Create(ctx, &domain.User{
		CPF: "12345678901", PasswordHash: "hash", FirstName: "Carla", LastName: "Dias",
		WorkType: domain.WorkTypeFiletagem, IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("id/timestamps not assigned: %+v", created)
	}

	if _, err := db.Create(ctx, &domain.User{CPF: "12345678901", IsActive: true}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate cpf: want ErrConflict, got %v", err)
	}

	byCPF, err := db.GetByCPF(ctx, "12345678901")
	if err != nil || byCPF == nil || byCPF.ID != created.ID {
		t.Fatalf("GetByCPF: %v, %v", byCPF, err)
	}

	inactive := false
	updated, err := db.Update(ctx, created.ID, domain.UserUpdate{IsActive: &inactive})
	if err != nil || updated.IsActive {
		t.Fatalf("Update: %v, %v", updated, err)
	}

	missing, err := db.Update(ctx, 999, domain.UserUpdate{IsActive: &inactive})
	if err != nil || missing != nil {
		t.Fatalf("Update missing: want nil, nil; got %v, %v", missing, err)
	}
}

func TestListOrdering(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	for _, u := range []domain.User{
		{CPF: "10000000001", FirstName: "Zeca", LastName: "Melo", IsActive: true},
		{CPF: "10000000002", FirstName: "Ana", LastName: "Souza", IsActive: true},
		{CPF: "10000000003", FirstName: "Rui", LastName: "Alves", IsAdmin: true, IsActive: true},
		{CPF: "10000000004", FirstName: "Bia", LastName: "Lima", IsActive: false},
	} {
		if _, err := db.Create(ctx, &u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := db.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 4 || all[0].FirstName != "Ana" || all[3].FirstName != "Zeca" {
		t.Fatalf("unexpected ordering: %+v", all)
	}

	workers, err := db.ListActiveWorkers(ctx)
	if err != nil {
		t.Fatalf("ListActiveWorkers: %v", err)
	}
	if len(workers) != 2 || workers[0].FirstName != "Ana" || workers[1].FirstName != "Zeca" {
		t.Fatalf("admins or inactive leaked: %+v", workers)
	}

	active, err := db.CountActive(ctx)
	if err != nil || active != 3 {
		t.Fatalf("CountActive: want 3, got %d, %v", active, err)
	}
}

func TestRecordFilterQuirk(t *testing.T) {
	db := memory.New()
	repo := db.NewRecordRepo()
	ctx := context.Background()

	for _, r := range []domain.WeightRecord{
		{UserID: 1, Weight: 5, Date: "2024-03-01", CreatedBy: 9},
		{UserID: 1, Weight: 6, Date: "2024-03-15", CreatedBy: 9},
		{UserID: 1, Weight: 7, Date: "2024-04-01", CreatedBy: 9},
		{UserID: 2, Weight: 8, Date: "2024-03-15", CreatedBy: 9},
	} {
		if _, err := repo.Create(ctx, &r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	ranged, err := repo.ListByUser(ctx, 1, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(ranged) != 2 || ranged[0].Date != "2024-03-15" || ranged[1].Date != "2024-03-01" {
		t.Fatalf("range filter or ordering broken: %+v", ranged)
	}

	// A single bound is ignored: all-time listing.
	all, err := repo.ListByUser(ctx, 1, "2024-03-01", "")
	if err != nil || len(all) != 3 {
		t.Fatalf("single bound must be ignored: %+v, %v", all, err)
	}

	every, err := repo.ListAll(ctx, "2024-03-15", "2024-03-15")
	if err != nil || len(every) != 2 {
		t.Fatalf("ListAll day filter: %+v, %v", every, err)
	}
}

func TestSessionExpiry(t *testing.T) {
	db := memory.New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, 1, "fresh", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, 1, "stale", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}

	if s, _ := repo.GetByToken(ctx, "stale"); s != nil {
		t.Fatal("expired session survived janitor")
	}
	if s, _ := repo.GetByToken(ctx, "fresh"); s == nil {
		t.Fatal("valid session was pruned")
	}

	if err := repo.Delete(ctx, "fresh"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "fresh"); s != nil {
		t.Fatal("deleted session still resolvable")
	}
}
