package service

import (
	"errors"
	"testing"

	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
)

func createServiceUser(t *testing.T, svc *AuthService, username string) *models.User {
	t.Helper()
	user, err := svc.Register(&dto.RegisterForm{Username: username, Password: "password"})
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

func TestWeekStatsProgress(t *testing.T) {
	db := setupTestDB(t)
	taskSvc := NewTaskService(repository.NewTaskRepository(db))
	authSvc := NewAuthService(repository.NewUserRepository(db))
	user := createServiceUser(t, authSvc, "stats_user")

	// 第一周：3个任务完成2个；其余周为空
	forms := []dto.AddTaskForm{
		{Text: "a", Month: 0, WeekInMonth: 1},
		{Text: "b", Month: 0, WeekInMonth: 1},
		{Text: "c", Month: 0, WeekInMonth: 1},
	}
	for i := range forms {
		if err := taskSvc.AddTask(user.ID, &forms[i]); err != nil {
			t.Fatalf("添加任务失败: %v", err)
		}
	}

	var tasks []models.Task
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&tasks).Error; err != nil {
		t.Fatalf("读取任务失败: %v", err)
	}
	for _, task := range tasks[:2] {
		if err := taskSvc.ToggleTask(user.ID, task.ID); err != nil {
			t.Fatalf("翻转任务失败: %v", err)
		}
	}

	stats, err := taskSvc.WeekStats(user.ID, 0)
	if err != nil {
		t.Fatalf("WeekStats 失败: %v", err)
	}
	if len(stats) != 5 {
		t.Fatalf("期望5个周块, 实际 %d", len(stats))
	}

	if stats[0].ID != 1 || stats[0].Progress != 67 {
		t.Errorf("第一周期望进度67, 实际 %+v", stats[0])
	}
	for _, stat := range stats[1:] {
		if stat.Progress != 0 {
			t.Errorf("空周进度应为0, 实际 %+v", stat)
		}
	}
}

func TestToggleTaskNoopForForeignTask(t *testing.T) {
	db := setupTestDB(t)
	taskSvc := NewTaskService(repository.NewTaskRepository(db))
	authSvc := NewAuthService(repository.NewUserRepository(db))
	owner := createServiceUser(t, authSvc, "toggle_owner")
	other := createServiceUser(t, authSvc, "toggle_other")

	if err := taskSvc.AddTask(owner.ID, &dto.AddTaskForm{Text: "x", Month: 1, WeekInMonth: 2}); err != nil {
		t.Fatalf("添加任务失败: %v", err)
	}

	var task models.Task
	if err := db.Where("user_id = ?", owner.ID).First(&task).Error; err != nil {
		t.Fatalf("读取任务失败: %v", err)
	}

	// 其他用户翻转别人的任务是静默无操作
	if err := taskSvc.ToggleTask(other.ID, task.ID); err != nil {
		t.Fatalf("跨用户翻转应静默, 实际 %v", err)
	}

	var after models.Task
	if err := db.First(&after, task.ID).Error; err != nil {
		t.Fatalf("读取任务失败: %v", err)
	}
	if after.Completed {
		t.Error("任务状态不应被其他用户改变")
	}

	// 不存在的任务ID同样静默
	if err := taskSvc.ToggleTask(owner.ID, 99999); err != nil {
		t.Fatalf("不存在的任务应静默, 实际 %v", err)
	}
}

func TestNoteServiceAbsentIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	noteSvc := NewNoteService(repository.NewNoteRepository(db))
	authSvc := NewAuthService(repository.NewUserRepository(db))
	user := createServiceUser(t, authSvc, "note_user")

	content, err := noteSvc.Content(user.ID, models.MainScope())
	if err != nil {
		t.Fatalf("读取缺失笔记不应报错: %v", err)
	}
	if content != "" {
		t.Errorf("缺失笔记应为空内容, 实际 %q", content)
	}
}

func TestNoteServiceRejectsInvalidScope(t *testing.T) {
	db := setupTestDB(t)
	noteSvc := NewNoteService(repository.NewNoteRepository(db))

	// 月度范围缺少月份ID
	bad := models.NoteScope{Category: models.NoteCategoryMonth, MonthID: models.ScopeNone, WeekID: models.ScopeNone}
	if err := noteSvc.Save(1, bad, "x"); !errors.Is(err, ErrInvalidNoteScope) {
		t.Errorf("无效范围期望 ErrInvalidNoteScope, 实际 %v", err)
	}
}
