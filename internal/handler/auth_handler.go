package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner-go/internal/dto"
	"planner-go/internal/service"
	"planner-go/internal/session"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService    *service.AuthService
	sessionManager *session.Manager
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, sessionManager *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionManager: sessionManager,
	}
}

// ShowLogin 渲染登录页
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", dto.AuthPageData{})
}

// ShowRegister 渲染注册页
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", dto.AuthPageData{})
}

// Register 用户注册
// 失败时带错误信息重新渲染注册页，成功后建立会话并跳转首页
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", dto.AuthPageData{Error: service.ErrUsernameTaken.Error()})
		return
	}

	user, err := h.authService.Register(&form)
	if err != nil {
		c.HTML(http.StatusOK, "register.html", dto.AuthPageData{Error: err.Error()})
		return
	}

	if err := h.sessionManager.Issue(c, user.ID); err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", dto.AuthPageData{Error: service.ErrInvalidCredentials.Error()})
		return
	}

	user, err := h.authService.Login(&form)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", dto.AuthPageData{Error: err.Error()})
		return
	}

	if err := h.sessionManager.Issue(c, user.ID); err != nil {
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout 退出登录
// 销毁会话是幂等的，未登录访问也只是跳回登录页
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessionManager.Destroy(c)
	c.Redirect(http.StatusFound, "/login")
}
