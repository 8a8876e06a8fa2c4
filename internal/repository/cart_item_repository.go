package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 同一(cart, game)は数量加算。結果の明細を返す。
	AddQuantity(ctx context.Context, cartID int64, gameID int64, qty int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// 所有者スコープ付きの取得。他ユーザーの明細IDはErrNotFound。
	FindOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (model.CartItem, error)
}
