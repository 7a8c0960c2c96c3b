package planner

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinImageCount = 1
	MaxImageCount = 10
	MaxMoods      = 2
)

// GeneratePlanRequest - POST /api/generate-plan 본문
type GeneratePlanRequest struct {
	ImageCount int      `json:"imageCount"`
	Type       TripType `json:"type"`
	Moods      []Mood   `json:"moods"`
	Title      string   `json:"title,omitempty"`
	SessionID  string   `json:"sessionId,omitempty"`
}

// SuggestTitleRequest - POST /api/suggest-title 본문
type SuggestTitleRequest struct {
	Type  TripType `json:"type"`
	Moods []Mood   `json:"moods"`
}

// SuggestTitleResponse - 제목 제안 응답
type SuggestTitleResponse struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// Validate - 이미지 수/여행 타입/분위기 검증 (사용자에게 보여줄 메시지)
func (r *GeneratePlanRequest) Validate() error {
	if r.ImageCount < MinImageCount || r.ImageCount > MaxImageCount {
		return errors.New("이미지 수는 1~10개여야 합니다")
	}
	return validateTripAndMoods(r.Type, r.Moods)
}

// ToPlanRequest - 검증된 요청을 planner 입력으로 변환
func (r *GeneratePlanRequest) ToPlanRequest() PlanRequest {
	return PlanRequest{
		ImageCount: r.ImageCount,
		TripType:   r.Type,
		Moods:      r.Moods,
		Title:      strings.TrimSpace(r.Title),
		SessionID:  r.SessionID,
	}
}

func (r *SuggestTitleRequest) Validate() error {
	return validateTripAndMoods(r.Type, r.Moods)
}

func validateTripAndMoods(tripType TripType, moods []Mood) error {
	if tripType == "" {
		return errors.New("여행 타입이 필요합니다")
	}
	if !tripType.Valid() {
		return fmt.Errorf("알 수 없는 여행 타입입니다: %s", tripType)
	}
	if len(moods) == 0 {
		return errors.New("최소 1개의 분위기를 선택해주세요")
	}
	if len(moods) > MaxMoods {
		return errors.New("분위기는 최대 2개까지 선택할 수 있습니다")
	}
	for _, m := range moods {
		if !m.Valid() {
			return fmt.Errorf("알 수 없는 분위기입니다: %s", m)
		}
	}
	return nil
}
