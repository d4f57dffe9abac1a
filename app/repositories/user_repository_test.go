package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"papelaria/app/models"
	"papelaria/app/repositories"
	"papelaria/pkg/apperr"
)

func TestCreateUserThenListIncludesItOnce(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	created, err := repo.Create("Ana", "ana@x.com")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	users, err := repo.All()
	require.NoError(t, err)

	matches := 0
	for _, u := range users {
		if u.Name == "Ana" && u.Email == "ana@x.com" {
			matches++
		}
	}
	require.Equal(t, 1, matches)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	_, err := repo.Create("Ana", "ana@x.com")
	require.NoError(t, err)

	_, err = repo.Create("Outra Ana", "ana@x.com")
	require.ErrorIs(t, err, apperr.ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ana@x.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	cases := []struct {
		name  string
		email string
		field string
	}{
		{"A", "a@x.com", "name"},           // too short
		{"Ana", "not-an-email", "email"},   // bad syntax
		{"", "a@x.com", "name"},            // empty name
	}

	for _, tc := range cases {
		_, err := repo.Create(tc.name, tc.email)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr), "expected validation error for %q/%q", tc.name, tc.email)
		require.Contains(t, verr.Fields, tc.field)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count, "invalid users must not be inserted")
}

func TestListUsersIncludesPurchasesWithItem(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	purchases := repositories.NewPurchaseRepository(db)

	u, err := users.Create("Ana", "ana@x.com")
	require.NoError(t, err)

	item := models.Item{Name: "Caderno", Price: 24.9}
	require.NoError(t, db.Create(&item).Error)

	_, err = purchases.Create(u.ID, item.ID, 2)
	require.NoError(t, err)

	all, err := users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Len(t, all[0].Purchases, 1)
	require.NotNil(t, all[0].Purchases[0].Item)
	require.Equal(t, "Caderno", all[0].Purchases[0].Item.Name)
}

func TestFindUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewUserRepository(db)

	_, err := repo.FindByID(42)

	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "User", nf.Entity)
}
