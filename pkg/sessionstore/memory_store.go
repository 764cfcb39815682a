package sessionstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore 进程内会话存储
// 未配置Redis时的本地部署方案，进程重启会话即失效
type MemoryStore struct {
	sessions sync.Map
	ttl      time.Duration
}

type memorySession struct {
	userID     uint
	expiration time.Time
}

// NewMemoryStore 创建进程内会话存储
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{ttl: ttl}

	go store.cleanup()

	return store
}

// Save 写入会话
func (s *MemoryStore) Save(_ context.Context, sessionID string, userID uint, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}

	s.sessions.Store(sessionID, &memorySession{
		userID:     userID,
		expiration: time.Now().Add(ttl),
	})
	return nil
}

// Resolve 解析会话并滑动续期
func (s *MemoryStore) Resolve(_ context.Context, sessionID string) (uint, bool, error) {
	value, exists := s.sessions.Load(sessionID)
	if !exists {
		return 0, false, nil
	}

	session := value.(*memorySession)
	if time.Now().After(session.expiration) {
		s.sessions.Delete(sessionID)
		return 0, false, nil
	}

	s.sessions.Store(sessionID, &memorySession{
		userID:     session.userID,
		expiration: time.Now().Add(s.ttl),
	})
	return session.userID, true, nil
}

// Delete 删除会话
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	return nil
}

// cleanup 周期清理过期会话
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.sessions.Range(func(key, value interface{}) bool {
			if now.After(value.(*memorySession).expiration) {
				s.sessions.Delete(key)
			}
			return true
		})
	}
}
