package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// 注文。total_priceは注文時点の合計スナップショット。
type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64           `gorm:"not null;index" json:"user_id"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     OrderStatus     `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
