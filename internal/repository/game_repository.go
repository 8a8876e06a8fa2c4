package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ゲームの取得だけを約束（カタログは読み取り専用）。
// 一覧・詳細ともPublisherとGenresを含めて返す。
type GameRepository interface {
	List(ctx context.Context) ([]model.Game, error)
	FindByID(ctx context.Context, id int64) (model.Game, error)
	// 存在チェックだけで関連は読まない
	Exists(ctx context.Context, id int64) (bool, error)
}
