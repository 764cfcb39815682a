package models

import (
	"time"
)

// Task 计划任务模型
// 任务始终归属于 (用户, 月份, 周) 三元组
type Task struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Text        string    `gorm:"type:text" json:"text"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	Day         string    `gorm:"size:50" json:"day"` // 展示用标签，不参与寻址
	WeekInMonth int       `gorm:"not null" json:"week_in_month"`
	Month       int       `gorm:"not null" json:"month"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Task) TableName() string {
	return "tasks"
}
