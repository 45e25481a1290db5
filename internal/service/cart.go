package service

import (
	"context"
	"fmt"

	"github.com/sipline/drink_shop/internal/models"
	"github.com/sipline/drink_shop/internal/repo"
	"github.com/sipline/drink_shop/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]transport.CartRow, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	return s.Repo.GetCart(ctx, userID)
}

func (s *CartService) AddToCart(ctx context.Context, item *models.CartItem) error {
	if item.UserID == 0 || item.DrinkID == 0 || item.Quantity == 0 {
		return fmt.Errorf("%w: user_id, drink_id and quantity required", ErrValidation)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	return s.Repo.AddToCart(ctx, item)
}

func (s *CartService) UpdateQuantity(ctx context.Context, id uint, quantity int) (int64, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	return s.Repo.UpdateCartQuantity(ctx, id, quantity)
}

func (s *CartService) DeleteItem(ctx context.Context, id uint) (int64, error) {
	return s.Repo.DeleteCartItem(ctx, id)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) (int64, error) {
	return s.Repo.ClearCart(ctx, userID)
}

func (s *CartService) IsEmpty(ctx context.Context, userID uint) (bool, error) {
	count, err := s.Repo.CountCartItems(ctx, userID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
