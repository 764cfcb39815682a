package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/service"
)

// TaskHandler 任务处理器
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// AddTask 添加任务
// 任务归属强制取会话用户，完成后重定向回来源页
func (h *TaskHandler) AddTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var form dto.AddTaskForm
	if err := c.ShouldBind(&form); err != nil {
		redirectBack(c)
		return
	}

	if err := h.taskService.AddTask(userID, &form); err != nil {
		serverError(c)
		return
	}

	redirectBack(c)
}

// ToggleTask 翻转任务完成状态
// 任务不存在时不报错，照常跳回来源页
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		redirectBack(c)
		return
	}

	if err := h.taskService.ToggleTask(userID, uint(taskID)); err != nil {
		serverError(c)
		return
	}

	redirectBack(c)
}
