package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sipline/drink_shop/internal/models"
)

func TestGetCart_JoinsDrinkFields(t *testing.T) {
	db := initTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	espresso := models.Drink{Name: "Espresso", Price: 2.99, Image: "espresso.jpg"}
	require.NoError(t, db.Create(&espresso).Error)

	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 5, DrinkID: espresso.ID, Quantity: 2}))

	rows, err := r.GetCart(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Espresso", rows[0].Name)
	assert.InDelta(t, 2.99, rows[0].Price, 1e-9)
	assert.Equal(t, "espresso.jpg", rows[0].Image)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestClearCart_RemovesOnlyThatUser(t *testing.T) {
	db := initTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	drink := models.Drink{Name: "Latte", Price: 4.49, Image: "latte.jpg"}
	require.NoError(t, db.Create(&drink).Error)

	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 5, DrinkID: drink.ID, Quantity: 1}))
	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 5, DrinkID: drink.ID, Quantity: 3}))
	require.NoError(t, r.AddToCart(ctx, &models.CartItem{UserID: 6, DrinkID: drink.ID, Quantity: 1}))

	deleted, err := r.ClearCart(ctx, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	count, err := r.CountCartItems(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = r.CountCartItems(ctx, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUpdateCartQuantity_ReportsRowsAffected(t *testing.T) {
	db := initTestDB(t)
	r := &GormRepo{DB: db}
	ctx := context.Background()

	drink := models.Drink{Name: "Americano", Price: 2.49, Image: "americano.jpg"}
	require.NoError(t, db.Create(&drink).Error)

	item := models.CartItem{UserID: 1, DrinkID: drink.ID, Quantity: 1}
	require.NoError(t, r.AddToCart(ctx, &item))

	updated, err := r.UpdateCartQuantity(ctx, item.ID, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	updated, err = r.UpdateCartQuantity(ctx, 9999, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 0, updated)

	deleted, err := r.DeleteCartItem(ctx, item.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
