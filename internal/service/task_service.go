package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planner-go/internal/calendar"
	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
)

// TaskService 任务服务
type TaskService struct {
	taskRepo *repository.TaskRepository
}

// NewTaskService 创建任务服务
func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// AddTask 为用户添加任务
// 归属用户始终取会话身份，表单无法指定别人
func (s *TaskService) AddTask(userID uint, form *dto.AddTaskForm) error {
	task := &models.Task{
		Text:        form.Text,
		Day:         form.Day,
		Completed:   form.Completed,
		WeekInMonth: form.WeekInMonth,
		Month:       form.Month,
		UserID:      userID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return fmt.Errorf("创建任务失败: %w", err)
	}
	return nil
}

// ToggleTask 翻转任务完成状态
// 任务不存在或不属于该用户时静默跳过
func (s *TaskService) ToggleTask(userID, taskID uint) error {
	task, err := s.taskRepo.GetByIDForUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("查询任务失败: %w", err)
	}

	task.Completed = !task.Completed
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("更新任务失败: %w", err)
	}
	return nil
}

// WeekStats 计算某月五个周块的完成度
func (s *TaskService) WeekStats(userID uint, month int) ([]dto.WeekStat, error) {
	stats := make([]dto.WeekStat, 0, calendar.WeeksPerMonth)

	for week := 1; week <= calendar.WeeksPerMonth; week++ {
		total, err := s.taskRepo.CountByWeek(userID, month, week)
		if err != nil {
			return nil, fmt.Errorf("统计任务失败: %w", err)
		}

		done, err := s.taskRepo.CountCompletedByWeek(userID, month, week)
		if err != nil {
			return nil, fmt.Errorf("统计已完成任务失败: %w", err)
		}

		stats = append(stats, dto.WeekStat{
			ID:       week,
			Progress: calendar.Progress(done, total),
		})
	}

	return stats, nil
}

// ListWeekTasks 获取某周的任务列表
func (s *TaskService) ListWeekTasks(userID uint, month, week int) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByWeek(userID, month, week)
	if err != nil {
		return nil, fmt.Errorf("获取任务列表失败: %w", err)
	}
	return tasks, nil
}
