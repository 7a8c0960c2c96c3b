package planner

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	TitleSourceAI       = "ai"
	TitleSourceTemplate = "template"
)

// Service - AI 우선, 실패 시 결정론적 계획으로 대체하는 진입점
type Service struct {
	planner *Planner
	ai      *AIPlanner
	logger  zerolog.Logger
}

// NewService - ai가 nil이면 항상 템플릿 계획 사용
func NewService(planner *Planner, ai *AIPlanner, logger zerolog.Logger) *Service {
	if planner == nil {
		planner = NewPlanner(nil)
	}
	return &Service{
		planner: planner,
		ai:      ai,
		logger:  logger,
	}
}

// ProducePlan - 항상 사용 가능한 계획을 돌려줌 (실패하지 않음)
// AI 결과가 있으면 그대로, 없으면 템플릿 계획
func (s *Service) ProducePlan(ctx context.Context, req PlanRequest) PlanResult {
	if result, ok := s.ai.Plan(ctx, req); ok {
		return result
	}

	s.logger.Info().
		Int("imageCount", req.ImageCount).
		Str("tripType", string(req.TripType)).
		Msg("📐 [Planner] Using template plan (AI unavailable or failed)")
	return s.planner.Plan(req)
}

// TemplatePlan - AI를 거치지 않은 결정론적 계획
func (s *Service) TemplatePlan(req PlanRequest) PlanResult {
	return s.planner.Plan(req)
}

// SuggestTitle - AI 제목 제안, 없으면 기본 제목 (title, source)
func (s *Service) SuggestTitle(ctx context.Context, tripType TripType, moods []Mood) (string, string) {
	if title, ok := s.ai.SuggestTitle(ctx, tripType, moods); ok {
		return title, TitleSourceAI
	}
	return DefaultTitle(tripType, moods, s.planner.intn), TitleSourceTemplate
}
