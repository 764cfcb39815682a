package sessionstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore 基于Redis的会话存储
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore 创建基于Redis的会话存储
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// resolveScript 读取并刷新会话的Lua脚本
// 使用Lua脚本确保"读取+续期"的原子性，
// 避免GET和EXPIRE之间会话正好过期的间隙
var resolveScript = redis.NewScript(
	`local value = redis.call('GET', KEYS[1])
	if value == false then
		return false
	end
	redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
	return value`,
)

// Save 写入会话
func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}

	key := s.keyPrefix + sessionID
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return fmt.Errorf("写入会话失败: %w", err)
	}
	return nil
}

// Resolve 解析会话并滑动续期
func (s *RedisStore) Resolve(ctx context.Context, sessionID string) (uint, bool, error) {
	key := s.keyPrefix + sessionID

	result, err := resolveScript.Run(ctx, s.client, []string{key}, int(s.ttl.Seconds())).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("执行Lua脚本失败: %w", err)
	}

	raw, ok := result.(string)
	if !ok {
		return 0, false, fmt.Errorf("意外的会话值类型: %T", result)
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("解析会话用户ID失败: %w", err)
	}

	return uint(userID), true, nil
}

// Delete 删除会话
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}
