package repo

import (
	"context"
	"errors"

	"github.com/sipline/drink_shop/internal/models"
)

var ErrUsernameTaken = errors.New("username already exists")

// CreateUser persists a new user and reports ErrUsernameTaken when the
// username is already registered.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUsernameTaken
	}
	return nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
