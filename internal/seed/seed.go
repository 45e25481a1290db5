package seed

import (
	"gorm.io/gorm"

	"github.com/sipline/drink_shop/internal/models"
)

// Drinks is the starter catalog.
func Drinks() []models.Drink {
	return []models.Drink{
		{Name: "Espresso", Price: 2.99, Image: "espresso.jpg"},
		{Name: "Cappuccino", Price: 3.99, Image: "cappuccino.jpg"},
		{Name: "Latte", Price: 4.49, Image: "latte.jpg"},
		{Name: "Americano", Price: 2.49, Image: "americano.jpg"},
	}
}

// Run populates the drinks table. It is idempotent: an already-populated
// catalog is left alone.
func Run(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Drink{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	drinks := Drinks()
	if err := db.Create(&drinks).Error; err != nil {
		return 0, err
	}
	return len(drinks), nil
}
