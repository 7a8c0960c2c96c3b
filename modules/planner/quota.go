package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// AIQuotaTTL - 세션별 AI 사용 횟수 보관 기간
const AIQuotaTTL = 24 * time.Hour

// Quota - 세션별 AI 호출 허용 여부
type Quota interface {
	Allow(ctx context.Context, sessionID string) (bool, error)
}

// RedisQuota - Redis INCR 기반 세션별 AI 사용 제한
// Redis가 없거나 limit <= 0이면 제한 없음
type RedisQuota struct {
	rdb   *redis.Client
	limit int
	ttl   time.Duration
}

func NewRedisQuota(rdb *redis.Client, limit int) *RedisQuota {
	return &RedisQuota{rdb: rdb, limit: limit, ttl: AIQuotaTTL}
}

func quotaKey(sessionID string) string {
	return fmt.Sprintf("plan:ai:usage:%s", sessionID)
}

// Allow - 사용 횟수를 1 증가시키고 limit 이내인지 확인
// INCR과 TTL을 한 번에 보내고, TTL이 없는 키(첫 호출 또는 이전 EXPIRE 실패)에는 다시 설정
// Redis 오류 시에는 허용하고 오류를 함께 돌려줌
func (q *RedisQuota) Allow(ctx context.Context, sessionID string) (bool, error) {
	if q == nil || q.rdb == nil || q.limit <= 0 || sessionID == "" {
		return true, nil
	}

	key := quotaKey(sessionID)
	pipe := q.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("incr %s: %w", key, err)
	}

	count := incr.Val()
	if ttl.Val() < 0 {
		if err := q.rdb.Expire(ctx, key, q.ttl).Err(); err != nil {
			return count <= int64(q.limit), fmt.Errorf("expire %s: %w", key, err)
		}
	}

	return count <= int64(q.limit), nil
}
