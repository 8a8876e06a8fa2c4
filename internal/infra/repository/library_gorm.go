package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"app/internal/domain/model"
)

type LibraryGormRepository struct {
	db *gorm.DB
}

// DI
func NewLibraryGormRepository(db *gorm.DB) *LibraryGormRepository {
	return &LibraryGormRepository{db: db}
}

// 所有ゲームをPublisher/Genres込みで一覧
func (r *LibraryGormRepository) ListGames(ctx context.Context, userID int64) ([]model.Game, error) {
	var games []model.Game

	err := r.db.WithContext(ctx).
		Joins("join library_entries on library_entries.game_id = games.id").
		Where("library_entries.user_id = ?", userID).
		Preload("Publisher").
		Preload("Genres").
		Order("games.id asc").
		Find(&games).Error

	if err != nil {
		return []model.Game{}, err
	}
	return games, nil
}

// 複合一意(user_id, game_id)に任せて冪等に追加する。
// 既に所有していれば何も起きず created=false。
func (r *LibraryGormRepository) Add(ctx context.Context, userID int64, gameID int64) (bool, error) {
	entry := model.LibraryEntry{
		UserID: userID,
		GameID: gameID,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// 所有していなくてもエラーにしない（冪等）
func (r *LibraryGormRepository) Remove(ctx context.Context, userID int64, gameID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.LibraryEntry{}).Error
}

func (r *LibraryGormRepository) Owns(ctx context.Context, userID int64, gameID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.LibraryEntry{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}
