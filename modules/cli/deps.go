package cli

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/config"
	"story-album-server/modules/common/gemini"
	redisutil "story-album-server/modules/common/redis"
	"story-album-server/modules/planner"
)

// newPlannerService - Gemini 키가 있으면 AI 우선, 없으면 템플릿만
// 반환된 redis 클라이언트는 호출자가 닫음 (nil일 수 있음)
func newPlannerService(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*planner.Service, *redis.Client) {
	var generator planner.TextGenerator
	if cfg.GeminiEnabled() {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️  [Gemini] Client init failed, template planner only")
		} else {
			generator = client
			log.Info().Str("model", client.Model()).Msg("✅ [Gemini] Client initialized")
		}
	} else {
		log.Info().Msg("⚠️  [Gemini] GEMINI_API_KEY not set, template planner only")
	}

	var rdb *redis.Client
	var quota planner.Quota
	if generator != nil && cfg.AIPlanQuotaPerSession > 0 {
		rdb = redisutil.Connect(ctx, cfg, log)
		if rdb != nil {
			quota = planner.NewRedisQuota(rdb, cfg.AIPlanQuotaPerSession)
		}
	}

	ai := planner.NewAIPlanner(generator, quota, log)
	return planner.NewService(nil, ai, log), rdb
}
