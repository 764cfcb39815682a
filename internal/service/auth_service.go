package service

import (
	"errors"
	"fmt"

	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
	"planner-go/internal/utils"
)

// 表单上直接展示的认证错误
var (
	// ErrUsernameTaken 用户名已被占用
	ErrUsernameTaken = errors.New("الاسم موجود فعلاً")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("بيانات غلط")
)

// AuthService 认证服务
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register 用户注册
func (s *AuthService) Register(form *dto.RegisterForm) (*models.User, error) {
	// 验证用户名是否已存在
	exists, err := s.userRepo.ExistsByUsername(form.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	// 创建用户
	// 唯一索引兜住预检查和插入之间的并发注册，
	// 此时的创建失败同样按用户名冲突反馈
	user := &models.User{
		Username:     form.Username,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrUsernameTaken
	}

	return user, nil
}

// Login 用户登录
// 用户不存在和密码错误返回同一个错误，不泄露哪一步失败
func (s *AuthService) Login(form *dto.LoginForm) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(form.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.CheckPassword(form.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
