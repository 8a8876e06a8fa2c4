package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type GameGormRepository struct {
	db *gorm.DB
}

// DI
func NewGameGormRepository(db *gorm.DB) *GameGormRepository {
	return &GameGormRepository{db: db}
}

// PublisherとGenresを含めて一覧（id昇順）
func (r *GameGormRepository) List(ctx context.Context) ([]model.Game, error) {
	var games []model.Game

	if err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("Genres").
		Order("id asc").
		Find(&games).Error; err != nil {
		return []model.Game{}, err
	}

	return games, nil
}

func (r *GameGormRepository) FindByID(ctx context.Context, id int64) (model.Game, error) {
	var game model.Game

	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Preload("Genres").
		Where("id = ?", id).
		First(&game).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Game{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Game{}, err
	}
	return game, nil
}

func (r *GameGormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Game{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
