package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Drink struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"not null"                 json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`
	Image string  `gorm:"not null"                 json:"image"`
}

type CartItem struct {
	ID       uint `gorm:"primaryKey;autoIncrement"            json:"id"`
	UserID   uint `gorm:"index;not null"                      json:"user_id"`
	DrinkID  uint `gorm:"not null"                            json:"drink_id"`
	Quantity int  `gorm:"not null;default:1;check:quantity>0" json:"quantity"`
}

// TableName keeps the table name the frontend-era schema used.
func (CartItem) TableName() string {
	return "cart"
}

type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null"           json:"user_id"`
	TotalAmount float64   `gorm:"not null"                 json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"order_id"`
	ProductID uint    `gorm:"not null"                 json:"product_id"`
	Quantity  int     `gorm:"not null"                 json:"quantity"`
	Price     float64 `gorm:"not null"                 json:"price"`
}
