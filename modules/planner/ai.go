package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrNoCredential - 생성형 모델 자격 증명이 설정되지 않음 (정상 상태)
	ErrNoCredential = errors.New("generative model not configured")
	// ErrQuotaExceeded - 세션 AI 사용 한도 초과
	ErrQuotaExceeded = errors.New("ai quota exceeded for session")
)

// TextGenerator - 프롬프트를 보내고 원문 텍스트를 받는 생성형 모델
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AIPlanner - 생성형 모델로 계획/제목을 얻는 best-effort 어댑터
// 모든 실패는 "결과 없음"으로 바뀌고 호출자에게 에러로 전달되지 않음
type AIPlanner struct {
	generator TextGenerator
	quota     Quota
	logger    zerolog.Logger
}

// NewAIPlanner - generator가 nil이면 항상 결과 없음
func NewAIPlanner(generator TextGenerator, quota Quota, logger zerolog.Logger) *AIPlanner {
	return &AIPlanner{
		generator: generator,
		quota:     quota,
		logger:    logger,
	}
}

// Enabled - 자격 증명(생성기)이 설정되어 있는지
func (a *AIPlanner) Enabled() bool {
	return a != nil && a.generator != nil
}

// Plan - AI 계획 생성, 실패하면 ok=false
func (a *AIPlanner) Plan(ctx context.Context, req PlanRequest) (PlanResult, bool) {
	result, err := a.tryPlan(ctx, req)
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			a.logger.Warn().Err(err).
				Int("imageCount", req.ImageCount).
				Str("tripType", string(req.TripType)).
				Msg("⚠️ [AIPlanner] AI plan unavailable")
		}
		return PlanResult{}, false
	}

	a.logger.Info().
		Int("imageCount", req.ImageCount).
		Int("blocks", len(result.EditPlan)).
		Int("textSlots", len(result.TextSlots)).
		Msg("✅ [AIPlanner] AI plan generated")
	return result, true
}

func (a *AIPlanner) tryPlan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	if !a.Enabled() {
		return PlanResult{}, ErrNoCredential
	}

	if err := a.checkQuota(ctx, req.SessionID); err != nil {
		return PlanResult{}, err
	}

	raw, err := a.generator.GenerateText(ctx, BuildPlanPrompt(req))
	if err != nil {
		return PlanResult{}, fmt.Errorf("generate plan: %w", err)
	}

	result, err := ParsePlanFromText(raw)
	if err != nil {
		return PlanResult{}, err
	}

	if err := CheckIndices(result.EditPlan, req.ImageCount); err != nil {
		return PlanResult{}, &ParseError{Reason: "shape", Err: err}
	}
	return result, nil
}

func (a *AIPlanner) checkQuota(ctx context.Context, sessionID string) error {
	if a.quota == nil {
		return nil
	}

	allowed, err := a.quota.Allow(ctx, sessionID)
	if err != nil {
		a.logger.Warn().Err(err).Str("sessionId", sessionID).Msg("⚠️ [AIPlanner] Quota check failed, allowing")
	}
	if !allowed {
		return ErrQuotaExceeded
	}
	return nil
}

// SuggestTitle - 제목 하나만 제안받음, 실패하면 ok=false
func (a *AIPlanner) SuggestTitle(ctx context.Context, tripType TripType, moods []Mood) (string, bool) {
	if !a.Enabled() {
		return "", false
	}

	raw, err := a.generator.GenerateText(ctx, BuildTitlePrompt(tripType, moods))
	if err != nil {
		a.logger.Warn().Err(err).Str("tripType", string(tripType)).Msg("⚠️ [AIPlanner] Title suggestion failed")
		return "", false
	}

	title := cleanTitle(raw)
	if title == "" {
		a.logger.Warn().Str("tripType", string(tripType)).Msg("⚠️ [AIPlanner] Empty title suggestion")
		return "", false
	}
	return title, true
}

// cleanTitle - 공백과 감싸는 따옴표 제거
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, "\"'“”‘’")
	return strings.TrimSpace(title)
}
