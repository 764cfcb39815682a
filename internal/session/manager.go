package session

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"planner-go/internal/utils"
	"planner-go/pkg/sessionstore"
)

// Manager 会话管理器
// 负责会话的签发、解析和销毁，Cookie中只放签名后的会话ID
type Manager struct {
	store      sessionstore.Store
	jwtManager *utils.JWTManager
	cookieName string
	expireTime time.Duration
}

// NewManager 创建会话管理器
func NewManager(store sessionstore.Store, jwtManager *utils.JWTManager, cookieName string, expireTime time.Duration) *Manager {
	return &Manager{
		store:      store,
		jwtManager: jwtManager,
		cookieName: cookieName,
		expireTime: expireTime,
	}
}

// Issue 为用户签发新会话并写入Cookie
func (m *Manager) Issue(c *gin.Context, userID uint) error {
	sid, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("生成会话ID失败: %w", err)
	}

	if err := m.store.Save(c.Request.Context(), sid.String(), userID, m.expireTime); err != nil {
		return err
	}

	token, err := m.jwtManager.GenerateToken(sid.String())
	if err != nil {
		return fmt.Errorf("签发会话Token失败: %w", err)
	}

	c.SetCookie(m.cookieName, token, int(m.expireTime.Seconds()), "/", "", false, true)
	return nil
}

// Resolve 从请求中解析已认证的用户ID
// Cookie缺失、签名无效、会话过期都按未认证处理
func (m *Manager) Resolve(c *gin.Context) (uint, bool) {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return 0, false
	}

	claims, err := m.jwtManager.ValidateToken(token)
	if err != nil {
		return 0, false
	}

	userID, ok, err := m.store.Resolve(c.Request.Context(), claims.SessionID)
	if err != nil || !ok {
		return 0, false
	}

	return userID, true
}

// Destroy 销毁会话
// 对已失效或不存在的会话同样幂等地清掉Cookie
func (m *Manager) Destroy(c *gin.Context) {
	if token, err := c.Cookie(m.cookieName); err == nil {
		if claims, err := m.jwtManager.ValidateToken(token); err == nil {
			_ = m.store.Delete(c.Request.Context(), claims.SessionID)
		}
	}

	c.SetCookie(m.cookieName, "", -1, "/", "", false, true)
}
