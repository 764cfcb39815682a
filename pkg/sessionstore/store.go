// Package sessionstore 提供服务端会话存储
// 客户端只持有会话ID，用户身份始终以存储中的记录为准
package sessionstore

import (
	"context"
	"time"
)

// Store 会话存储接口
type Store interface {
	// Save 写入会话并设置过期时间
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	// Resolve 解析会话ID对应的用户，命中时顺带刷新过期时间
	Resolve(ctx context.Context, sessionID string) (uint, bool, error)
	// Delete 删除会话，对不存在的会话是幂等的
	Delete(ctx context.Context, sessionID string) error
}
