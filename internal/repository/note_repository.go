package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository 笔记数据访问层
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建笔记Repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// GetByScope 获取指定范围的笔记
// 未找到时返回 gorm.ErrRecordNotFound，由调用方按"缺失"处理
func (r *NoteRepository) GetByScope(userID uint, scope models.NoteScope) (*models.Note, error) {
	var note models.Note
	err := r.db.Where(
		"user_id = ? AND category = ? AND month_id = ? AND week_id = ?",
		userID, scope.Category, scope.MonthID, scope.WeekID,
	).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Upsert 原子保存指定范围的笔记
// 依赖 idx_notes_scope 唯一索引做 INSERT ... ON CONFLICT DO UPDATE，
// 同一范围的并发保存不会产生重复行，最后写入者胜出
func (r *NoteRepository) Upsert(userID uint, scope models.NoteScope, content string) error {
	note := models.Note{
		Content:  content,
		Category: scope.Category,
		MonthID:  scope.MonthID,
		WeekID:   scope.WeekID,
		UserID:   userID,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category"}, {Name: "month_id"}, {Name: "week_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&note).Error
}
