package redis_ser

import (
	"context"
	"time"

	"bluelog/global"
)

// InvalidateSession 登出时将会话令牌加入黑名单，TTL为令牌剩余有效期
func InvalidateSession(token string, ttl time.Duration) error {
	if global.Redis == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	key := GetRedisKey(SessionBlacklist + token)
	return global.Redis.Set(context.Background(), key, "invalid", ttl).Err()
}

// IsSessionBlacklisted 检查会话令牌是否已被注销
// redis未配置时跳过黑名单检查
func IsSessionBlacklisted(token string) (bool, error) {
	if global.Redis == nil {
		return false, nil
	}
	key := GetRedisKey(SessionBlacklist + token)
	count, err := global.Redis.Exists(context.Background(), key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
