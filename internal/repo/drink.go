package repo

import (
	"context"

	"github.com/sipline/drink_shop/internal/models"
)

func (r *GormRepo) ListDrinks(ctx context.Context) ([]models.Drink, error) {
	var drinks []models.Drink
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *GormRepo) CreateDrink(ctx context.Context, drink *models.Drink) error {
	return r.DB.WithContext(ctx).Create(drink).Error
}

// SearchDrinks is the store-side fallback used when Elasticsearch is not
// configured.
func (r *GormRepo) SearchDrinks(ctx context.Context, q string) ([]models.Drink, error) {
	var drinks []models.Drink
	if err := r.DB.WithContext(ctx).
		Where("name LIKE ?", "%"+q+"%").
		Order("id ASC").
		Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}
