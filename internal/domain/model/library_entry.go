package model

import "time"

// ライブラリ（所有ゲーム）の明示的な中間テーブル。
// (user_id, game_id) の複合一意で二重所有を防ぐ。
type LibraryEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_library_user_game" json:"user_id"`
	GameID    int64     `gorm:"not null;uniqueIndex:idx_library_user_game" json:"game_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
