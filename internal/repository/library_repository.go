package repository

import (
	"context"

	"app/internal/domain/model"
)

// ライブラリ（所有ゲーム集合）の永続化。
type LibraryRepository interface {
	ListGames(ctx context.Context, userID int64) ([]model.Game, error)
	// 既に所有していれば何もしない（created=false）
	Add(ctx context.Context, userID int64, gameID int64) (created bool, err error)
	// 所有していなくてもエラーにしない
	Remove(ctx context.Context, userID int64, gameID int64) error
	Owns(ctx context.Context, userID int64, gameID int64) (bool, error)
}
