package repository

import (
	"context"

	"gorm.io/gorm"

	"app/internal/domain/model"
)

type PublisherGormRepository struct {
	db *gorm.DB
}

// DI
func NewPublisherGormRepository(db *gorm.DB) *PublisherGormRepository {
	return &PublisherGormRepository{db: db}
}

func (r *PublisherGormRepository) List(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&publishers).Error; err != nil {
		return []model.Publisher{}, err
	}

	return publishers, nil
}

type GenreGormRepository struct {
	db *gorm.DB
}

// DI
func NewGenreGormRepository(db *gorm.DB) *GenreGormRepository {
	return &GenreGormRepository{db: db}
}

func (r *GenreGormRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&genres).Error; err != nil {
		return []model.Genre{}, err
	}

	return genres, nil
}
