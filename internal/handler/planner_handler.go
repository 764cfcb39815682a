package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planner-go/internal/calendar"
	"planner-go/internal/config"
	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/models"
	"planner-go/internal/service"
)

// PlannerHandler 计划表页面处理器
type PlannerHandler struct {
	taskService *service.TaskService
	noteService *service.NoteService
	cfg         *config.Config
}

// NewPlannerHandler 创建计划表处理器
func NewPlannerHandler(taskService *service.TaskService, noteService *service.NoteService, cfg *config.Config) *PlannerHandler {
	return &PlannerHandler{
		taskService: taskService,
		noteService: noteService,
		cfg:         cfg,
	}
}

// Home 首页（12个月总览）
func (h *PlannerHandler) Home(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	note, err := h.noteService.Content(userID, models.MainScope())
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "months.html", dto.MonthsPageData{
		MonthNames: calendar.MonthNames,
		Note:       note,
	})
}

// MonthView 月视图（5个周块的完成度）
func (h *PlannerHandler) MonthView(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	monthID, ok := parseMonthParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	weeks, err := h.taskService.WeekStats(userID, monthID)
	if err != nil {
		serverError(c)
		return
	}

	note, err := h.noteService.Content(userID, models.MonthScope(monthID))
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "weeks.html", dto.WeeksPageData{
		MonthID:   monthID,
		MonthName: calendar.MonthName(monthID),
		Weeks:     weeks,
		Note:      note,
	})
}

// WeekView 周视图（7天日期与任务列表）
func (h *PlannerHandler) WeekView(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	monthID, ok := parseMonthParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	weekID, err := strconv.Atoi(c.Param("wId"))
	if err != nil || !calendar.ValidWeek(weekID) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	tasks, err := h.taskService.ListWeekTasks(userID, monthID, weekID)
	if err != nil {
		serverError(c)
		return
	}

	note, err := h.noteService.Content(userID, models.WeekScope(monthID, weekID))
	if err != nil {
		serverError(c)
		return
	}

	c.HTML(http.StatusOK, "tasks.html", dto.TasksPageData{
		MonthID:   monthID,
		WeekID:    weekID,
		MonthName: calendar.MonthName(monthID),
		Days:      calendar.WeekDays(h.cfg.Planner.Year, monthID, weekID),
		Tasks:     tasks,
		Note:      note,
	})
}

// parseMonthParam 解析路径中的月份索引
func parseMonthParam(c *gin.Context) (int, bool) {
	monthID, err := strconv.Atoi(c.Param("mId"))
	if err != nil || !calendar.ValidMonth(monthID) {
		return 0, false
	}
	return monthID, true
}
