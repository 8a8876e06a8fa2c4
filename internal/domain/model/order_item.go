package model

import "github.com/shopspring/decimal"

// 注文明細。priceは注文時点のスナップショットで、後のカタログ改定の影響を受けない。
type OrderItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64           `gorm:"not null;index" json:"order_id"`
	GameID        int64           `gorm:"not null;index" json:"game_id"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price_snapshot"`
}
