package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログの商品。priceは小数2桁の固定小数点（numeric）。
// CoverImageは相対パスで保存し、配信時に絶対URLへ変換する。
type Game struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	ReleaseDate time.Time       `gorm:"type:date;not null" json:"release_date"`
	CoverImage  string          `gorm:"type:varchar(255)" json:"cover_image"`
	PublisherID int64           `gorm:"not null;index" json:"publisher_id"`
	Publisher   Publisher       `json:"publisher"`
	Genres      []Genre         `gorm:"many2many:game_genres" json:"genres"`
}
