package models

type UserModel struct {
	ID        uint    `gorm:"primaryKey"`
	Username  string  `gorm:"uniqueIndex;size:100;not null"`
	Email     string  `gorm:"uniqueIndex;size:255;not null"`
	FullName  *string `gorm:"size:255"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
