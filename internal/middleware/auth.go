package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planner-go/internal/session"
)

// AuthMiddleware 会话认证中间件
// 未认证的请求一律重定向到登录页
func AuthMiddleware(sessionManager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionManager.Resolve(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// 将已验证的用户身份存入请求上下文
		c.Set("user_id", userID)

		c.Next()
	}
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}
