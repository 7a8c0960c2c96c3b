package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/config"
)

// Connect - Redis 연결 생성
// REDIS_HOST가 없거나 ping 실패 시 nil (사용량 제한 없이 동작)
func Connect(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *redis.Client {
	if !cfg.RedisEnabled() {
		logger.Info().Msg("⚠️  [Redis] REDIS_HOST not set, AI quota disabled")
		return nil
	}

	logger.Info().Str("addr", cfg.GetRedisAddr()).Bool("tls", cfg.RedisUseTLS).Msg("🔌 [Redis] Connecting")

	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: cfg.RedisHost,
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Msg("❌ [Redis] Ping failed, AI quota disabled")
		_ = rdb.Close()
		return nil
	}

	logger.Info().Msg("✅ [Redis] Connected")
	return rdb
}
