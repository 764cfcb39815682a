package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// TaskRepository 任务数据访问层
// 所有查询都限定在 (用户, 月份, 周) 范围内
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务Repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 创建任务
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByIDForUser 获取属于指定用户的任务
// 按 (id, user_id) 查询，保证用户只能操作自己的任务
func (r *TaskRepository) GetByIDForUser(id uint, userID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update 更新任务
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// ListByWeek 获取指定周的任务列表
func (r *TaskRepository) ListByWeek(userID uint, month, weekInMonth int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("user_id = ? AND month = ? AND week_in_month = ?", userID, month, weekInMonth).
		Order("id").Find(&tasks).Error
	return tasks, err
}

// CountByWeek 统计指定周的任务总数
func (r *TaskRepository) CountByWeek(userID uint, month, weekInMonth int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND month = ? AND week_in_month = ?", userID, month, weekInMonth).
		Count(&count).Error
	return count, err
}

// CountCompletedByWeek 统计指定周已完成的任务数
func (r *TaskRepository) CountCompletedByWeek(userID uint, month, weekInMonth int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND month = ? AND week_in_month = ? AND completed = ?", userID, month, weekInMonth, true).
		Count(&count).Error
	return count, err
}
