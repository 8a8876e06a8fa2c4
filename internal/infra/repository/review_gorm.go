package repository

import (
	"context"

	"gorm.io/gorm"

	"app/internal/domain/model"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// ゲームのレビューを新しい順に一覧
func (r *ReviewGormRepository) ListByGameID(ctx context.Context, gameID int64) ([]model.Review, error) {
	var reviews []model.Review

	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return []model.Review{}, err
	}

	return reviews, nil
}

func (r *ReviewGormRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}
