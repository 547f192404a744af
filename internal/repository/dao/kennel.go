package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrKennelNotFound   = errors.New("kennel not found")
	ErrKennelNameExists = errors.New("kennel already exists")
)

type Kennel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

type KennelDAO struct {
	db *gorm.DB
}

func NewKennelDAO(db *gorm.DB) *KennelDAO {
	return &KennelDAO{
		db: db,
	}
}

func (d *KennelDAO) Insert(ctx context.Context, kennel Kennel) (Kennel, error) {
	result := d.db.WithContext(ctx).Create(&kennel)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_kennels_name"`) {
			return Kennel{}, ErrKennelNameExists
		}

		return Kennel{}, result.Error
	}

	return kennel, nil
}

func (d *KennelDAO) FindByID(ctx context.Context, id uint) (Kennel, error) {
	var kennel Kennel

	result := d.db.WithContext(ctx).First(&kennel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Kennel{}, ErrKennelNotFound
		}

		return Kennel{}, result.Error
	}

	return kennel, nil
}

func (d *KennelDAO) List(ctx context.Context) ([]Kennel, error) {
	var kennels []Kennel

	result := d.db.WithContext(ctx).Order("name").Find(&kennels)
	if result.Error != nil {
		return nil, result.Error
	}

	return kennels, nil
}
