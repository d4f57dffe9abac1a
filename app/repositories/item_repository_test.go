package repositories_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"papelaria/app/models"
	"papelaria/app/repositories"
)

func TestListItemsSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewItemRepository(db)

	// Deliberately inserted out of alphabetical order.
	seed := []models.Item{
		{Name: "Marcador", Price: 6.9},
		{Name: "Borracha", Price: 2.5},
		{Name: "Caneta", Price: 3.5},
	}
	require.NoError(t, db.Create(&seed).Error)

	items, err := repo.All()
	require.NoError(t, err)
	require.Len(t, items, 3)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	require.True(t, sort.StringsAreSorted(names), "items must be ordered by name, got %v", names)
}

func TestListItemsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewItemRepository(db)

	items, err := repo.All()
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}
