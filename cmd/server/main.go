package main

import (
	"log"
	"os"

	"planner-go/internal/config"
	"planner-go/internal/models"
	"planner-go/internal/router"
	"planner-go/internal/session"
	"planner-go/internal/utils"
	"planner-go/pkg/sessionstore"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置（部署环境变量 PORT/DATABASE_URL/REDIS_ADDR 优先）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	db := models.GetDB()

	// 应用迁移（部署时一次性执行，与请求处理解耦）
	if err := models.RunMigrations(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化会话存储
	var store sessionstore.Store
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		store = sessionstore.NewRedisStore(redisClient, "session:", cfg.Session.GetExpireDuration())
		logger.Info("会话存储: Redis")
	} else {
		store = sessionstore.NewMemoryStore(cfg.Session.GetExpireDuration())
		logger.Info("会话存储: 进程内")
	}

	// 初始化会话管理器
	jwtManager := utils.NewJWTManager(cfg.Session.SecretKey, cfg.Session.GetExpireDuration())
	sessionManager := session.NewManager(store, jwtManager, cfg.Session.CookieName, cfg.Session.GetExpireDuration())

	// 注册表单验证规则
	if err := utils.RegisterValidations(); err != nil {
		log.Fatalf("注册验证规则失败: %v", err)
	}

	// 设置路由
	r := router.SetupRouter(cfg, sessionManager, logger, db)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
