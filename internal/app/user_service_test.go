package app_test

import (
	"context"
	"testing"

	"github.com/FeliCaldas/WeightTrackPro/internal/app"
	"github.com/FeliCaldas/WeightTrackPro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_Validation(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{}, bcrypt.MinCost)

	tests := []struct {
		name   string
		in     app.CreateUserInput
		fields []string
	}{
		{
			"short cpf",
			app.CreateUserInput{CPF: "123", Password: "x", FirstName: "Ana", LastName: "Souza"},
			[]string{"cpf"},
		},
		{
			"non-numeric cpf",
			app.CreateUserInput{CPF: "1234567890a", Password: "x", FirstName: "Ana", LastName: "Souza"},
			[]string{"cpf"},
		},
		{
			"unknown work type",
			app.CreateUserInput{CPF: "12345678901", Password: "x", FirstName: "Ana", LastName: "Souza", WorkType: "pesca"},
			[]string{"workType"},
		},
		{
			"everything missing",
			app.CreateUserInput{},
			[]string{"cpf", "password", "firstName", "lastName"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			ve, ok := app.AsValidation(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tc.fields, ve.Fields)
		})
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	var stored *domain.User
	users := &mockUserRepo{
		createFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
			stored = u
			out := *u
			out.ID = 5
			return &out, nil
		},
	}
	svc := app.NewUserService(users, bcrypt.MinCost)

	got, err := svc.Create(context.Background(), app.CreateUserInput{
		CPF: "12345678901", Password: "segredo", FirstName: "Ana", LastName: "Souza",
		WorkType: domain.WorkTypeEvisceracao,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.True(t, got.IsActive, "new users start active")
	assert.NotEqual(t, "segredo", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo")))
}

func TestUpdateUser_Partial(t *testing.T) {
	var gotUpd domain.UserUpdate
	users := &mockUserRepo{
		updateFn: func(_ context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
			require.Equal(t, int64(7), id)
			gotUpd = upd
			return &domain.User{ID: 7, FirstName: "Maria"}, nil
		},
	}
	svc := app.NewUserService(users, bcrypt.MinCost)

	first := "Maria"
	inactive := false
	got, err := svc.Update(context.Background(), 7, app.UpdateUserInput{
		FirstName: &first,
		IsActive:  &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.FirstName)

	require.NotNil(t, gotUpd.FirstName)
	assert.Equal(t, "Maria", *gotUpd.FirstName)
	require.NotNil(t, gotUpd.IsActive)
	assert.False(t, *gotUpd.IsActive)
	assert.Nil(t, gotUpd.LastName)
	assert.Nil(t, gotUpd.Password)
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	var gotUpd domain.UserUpdate
	users := &mockUserRepo{
		updateFn: func(_ context.Context, _ int64, upd domain.UserUpdate) (*domain.User, error) {
			gotUpd = upd
			return &domain.User{ID: 7}, nil
		},
	}
	svc := app.NewUserService(users, bcrypt.MinCost)

	pw := "nova-senha"
	_, err := svc.Update(context.Background(), 7, app.UpdateUserInput{Password: &pw})
	require.NoError(t, err)
	require.NotNil(t, gotUpd.Password)
	assert.NotEqual(t, pw, *gotUpd.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*gotUpd.Password), []byte(pw)))
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := app.NewUserService(&mockUserRepo{}, bcrypt.MinCost)

	first := "Maria"
	_, err := svc.Update(context.Background(), 99, app.UpdateUserInput{FirstName: &first})
	assert.ErrorIs(t, err, app.ErrUserNotFound)
}

func TestRoster_PublicFieldsOnly(t *testing.T) {
	users := &mockUserRepo{
		listActiveFn: func(_ context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 2, CPF: "12345678901", PasswordHash: "hash", FirstName: "Ana", LastName: "Souza", WorkType: domain.WorkTypeFiletagem},
			}, nil
		},
	}
	svc := app.NewUserService(users, bcrypt.MinCost)

	got, err := svc.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.PublicUser{
		ID: 2, FirstName: "Ana", LastName: "Souza", WorkType: domain.WorkTypeFiletagem,
	}, got[0])
}
