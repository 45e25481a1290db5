package repo

import (
	"context"

	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/transport"
)

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]transport.CartRow, error) {
	rows := make([]transport.CartRow, 0)
	err := r.DB.WithContext(ctx).
		Table("cart").
		Select("cart.id, drinks.name, drinks.price, drinks.image, cart.quantity").
		Joins("JOIN drinks ON cart.drink_id = drinks.id").
		Where("cart.user_id = ?", userID).
		Order("cart.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) UpdateCartQuantity(ctx context.Context, id uint, quantity int) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) DeleteCartItem(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.CartItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *GormRepo) CountCartItems(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
