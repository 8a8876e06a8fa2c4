package model

import "time"

// カートの明細。同一(cart, game)は1行のみで、追加は数量加算。
// quantityは1以上。更新で0以下になったら行ごと削除する。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;uniqueIndex:idx_cart_item_cart_game" json:"cart_id"`
	GameID    int64     `gorm:"not null;uniqueIndex:idx_cart_item_cart_game" json:"game_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
