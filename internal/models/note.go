package models

import (
	"time"
)

// 笔记的作用范围类别
const (
	NoteCategoryMain  = "main"  // 总览笔记
	NoteCategoryMonth = "month" // 月度笔记
	NoteCategoryWeek  = "week"  // 周笔记
)

// ScopeNone 表示范围字段对该类别不适用
const ScopeNone = -1

// Note 笔记模型
// (user_id, category, month_id, week_id) 上的唯一索引保证
// 每个范围至多一条笔记，并发保存依赖它做原子upsert
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Content   string    `gorm:"type:text" json:"content"`
	Category  string    `gorm:"size:20;not null;uniqueIndex:idx_notes_scope,priority:2" json:"category"`
	MonthID   int       `gorm:"uniqueIndex:idx_notes_scope,priority:3" json:"month_id"`
	WeekID    int       `gorm:"uniqueIndex:idx_notes_scope,priority:4" json:"week_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_notes_scope,priority:1" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Note) TableName() string {
	return "notes"
}

// NoteScope 笔记作用范围的变体键
// 不适用的字段固定为 ScopeNone，使唯一索引对三种类别都成立
type NoteScope struct {
	Category string
	MonthID  int
	WeekID   int
}

// MainScope 总览范围
func MainScope() NoteScope {
	return NoteScope{Category: NoteCategoryMain, MonthID: ScopeNone, WeekID: ScopeNone}
}

// MonthScope 月度范围
func MonthScope(monthID int) NoteScope {
	return NoteScope{Category: NoteCategoryMonth, MonthID: monthID, WeekID: ScopeNone}
}

// WeekScope 周范围
func WeekScope(monthID, weekID int) NoteScope {
	return NoteScope{Category: NoteCategoryWeek, MonthID: monthID, WeekID: weekID}
}

// Valid 校验范围与类别是否一致
func (s NoteScope) Valid() bool {
	switch s.Category {
	case NoteCategoryMain:
		return s.MonthID == ScopeNone && s.WeekID == ScopeNone
	case NoteCategoryMonth:
		return s.MonthID != ScopeNone && s.WeekID == ScopeNone
	case NoteCategoryWeek:
		return s.MonthID != ScopeNone && s.WeekID != ScopeNone
	default:
		return false
	}
}
