package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type AuthUser struct {
	ID uint `gorm:"primaryKey"`

	ProviderKey string `gorm:"uniqueIndex;not null"`
	Name        string
	Email       string
	Permissions string `gorm:"not null;default:none"` // "none", "pending", "data_entry" or "admin"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user AuthUser) (AuthUser, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return AuthUser{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (AuthUser, error) {
	var user AuthUser

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AuthUser{}, ErrUserNotFound
		}

		return AuthUser{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByProviderKey(ctx context.Context, key string) (AuthUser, error) {
	var user AuthUser

	result := d.db.WithContext(ctx).First(&user, "provider_key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AuthUser{}, ErrUserNotFound
		}

		return AuthUser{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) UpdateProfile(ctx context.Context, id uint, name, email string) (AuthUser, error) {
	result := d.db.WithContext(ctx).
		Model(&AuthUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email})
	if result.Error != nil {
		return AuthUser{}, result.Error
	}
	if result.RowsAffected == 0 {
		return AuthUser{}, ErrUserNotFound
	}

	return d.FindByID(ctx, id)
}
