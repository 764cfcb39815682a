package router

import (
	"planner-go/internal/config"
	"planner-go/internal/handler"
	"planner-go/internal/middleware"
	"planner-go/internal/repository"
	"planner-go/internal/service"
	"planner-go/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	sessionManager *session.Manager,
	logger *logrus.Logger,
	db *gorm.DB,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())

	// 服务端模板
	r.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	noteService := service.NewNoteService(noteRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService, sessionManager)
	plannerHandler := handler.NewPlannerHandler(taskService, noteService, cfg)
	taskHandler := handler.NewTaskHandler(taskService)
	noteHandler := handler.NewNoteHandler(noteService)

	// 公开路由
	r.GET("/login", authHandler.ShowLogin)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// 认证路由
	authorized := r.Group("")
	authorized.Use(middleware.AuthMiddleware(sessionManager))
	{
		// 页面
		authorized.GET("/", plannerHandler.Home)
		authorized.GET("/month/:mId", plannerHandler.MonthView)
		authorized.GET("/month/:mId/week/:wId", plannerHandler.WeekView)

		// 表单提交
		authorized.POST("/save-note", noteHandler.SaveNote)
		authorized.POST("/add", taskHandler.AddTask)
		authorized.POST("/toggle/:id", taskHandler.ToggleTask)
	}

	return r
}
