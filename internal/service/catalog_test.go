package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipline/drink_shop/internal/models"
)

func TestCatalogService_CreateAndList(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	drink := models.Drink{Name: "Espresso", Price: 2.99, Image: "espresso.jpg"}
	require.NoError(t, svc.CreateDrink(ctx, &drink))
	require.NotZero(t, drink.ID)

	drinks, err := svc.ListDrinks(ctx)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Espresso", drinks[0].Name)
}

func TestCatalogService_CreateDrink_Validation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	err := svc.CreateDrink(ctx, &models.Drink{Name: "", Price: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.CreateDrink(ctx, &models.Drink{Name: "Latte", Price: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService_SearchDrinks_StoreFallback(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	for _, d := range []models.Drink{
		{Name: "Espresso", Price: 2.99, Image: "espresso.jpg"},
		{Name: "Cappuccino", Price: 3.99, Image: "cappuccino.jpg"},
	} {
		d := d
		require.NoError(t, svc.CreateDrink(ctx, &d))
	}

	drinks, err := svc.SearchDrinks(ctx, "press")
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Espresso", drinks[0].Name)

	_, err = svc.SearchDrinks(ctx, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
