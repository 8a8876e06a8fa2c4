package repository

import (
	"context"

	"app/internal/domain/model"
)

// ユーザーの保存・取得を約束。emailは小文字化済みで渡される前提。
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByNickname(ctx context.Context, nickname string) (model.User, error)
}
