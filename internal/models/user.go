package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联
	Tasks []Task `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
	Notes []Note `gorm:"foreignKey:UserID" json:"notes,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
