package model

import "time"

// ログインキーはemail（小文字で保存して大文字小文字を区別しない一意にする）。
// nicknameは任意。入っている場合のみ一意。
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Nickname     *string    `gorm:"type:varchar(150);uniqueIndex" json:"nickname"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(150)" json:"last_name"`
	BirthDate    *time.Time `gorm:"type:date" json:"birth_date"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
