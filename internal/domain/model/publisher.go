package model

type Publisher struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Website string `gorm:"type:varchar(255)" json:"website"`
}
