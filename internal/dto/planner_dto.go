package dto

import (
	"strconv"
	"strings"

	"planner-go/internal/calendar"
	"planner-go/internal/models"
)

// AddTaskForm 添加任务表单
// 表单可以提交任务的全部字段，唯独归属用户以会话身份为准
type AddTaskForm struct {
	Text        string `form:"text"`
	Day         string `form:"day"`
	Completed   bool   `form:"completed"`
	WeekInMonth int    `form:"weekInMonth"`
	Month       int    `form:"month"`
}

// SaveNoteForm 保存笔记表单
// monthId/weekId 为可选字段，缺失或非数字一律按"不适用"处理
type SaveNoteForm struct {
	Content  string `form:"content"`
	Category string `form:"category" binding:"required,notecategory"`
	MonthID  string `form:"monthId"`
	WeekID   string `form:"weekId"`
}

// Scope 由表单构造笔记作用范围
func (f *SaveNoteForm) Scope() models.NoteScope {
	switch f.Category {
	case models.NoteCategoryMonth:
		return models.MonthScope(parseScopeID(f.MonthID))
	case models.NoteCategoryWeek:
		return models.WeekScope(parseScopeID(f.MonthID), parseScopeID(f.WeekID))
	default:
		return models.MainScope()
	}
}

// parseScopeID 解析可选的范围ID
func parseScopeID(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.ScopeNone
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return models.ScopeNone
	}
	return id
}

// WeekStat 月视图中单周的完成度
type WeekStat struct {
	ID       int
	Progress int
}

// MonthsPageData 首页（月总览）视图数据
type MonthsPageData struct {
	MonthNames []string
	Note       string
}

// WeeksPageData 月视图（周总览）视图数据
type WeeksPageData struct {
	MonthID   int
	MonthName string
	Weeks     []WeekStat
	Note      string
}

// TasksPageData 周视图（任务列表）视图数据
type TasksPageData struct {
	MonthID   int
	WeekID    int
	MonthName string
	Days      []calendar.DayEntry
	Tasks     []models.Task
	Note      string
}
