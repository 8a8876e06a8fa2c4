package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文の読み取り。作成（チェックアウト）は未実装で、将来の拡張に備えて
// スキーマと一覧だけを持つ。
type OrderRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
