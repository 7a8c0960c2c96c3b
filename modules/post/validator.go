package post

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"story-album-server/modules/common/model"
	"story-album-server/modules/planner"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// validateCreate - create-post 요청 검증 후 저장용 editPlan 반환
func validateCreate(req *CreatePostRequest) (planner.EditPlan, error) {
	if len(req.ImageURLs) == 0 {
		return nil, invalid("최소 1개의 이미지가 필요합니다")
	}
	for _, u := range req.ImageURLs {
		if strings.TrimSpace(u) == "" {
			return nil, invalid("이미지 URL이 비어 있습니다")
		}
	}

	if req.Type == "" {
		return nil, invalid("여행 타입이 필요합니다")
	}
	if !req.Type.Valid() {
		return nil, invalid(fmt.Sprintf("알 수 없는 여행 타입입니다: %s", req.Type))
	}
	for _, m := range req.Moods {
		if !m.Valid() {
			return nil, invalid(fmt.Sprintf("알 수 없는 분위기입니다: %s", m))
		}
	}

	if len(req.EditPlan) == 0 || string(req.EditPlan) == "null" {
		return nil, invalid("편집 계획이 필요합니다")
	}
	var plan planner.EditPlan
	if err := json.Unmarshal(req.EditPlan, &plan); err != nil {
		return nil, invalid("편집 계획 형식이 올바르지 않습니다")
	}
	if len(plan) == 0 {
		return nil, invalid("편집 계획이 필요합니다")
	}
	if err := planner.CheckIndices(plan, len(req.ImageURLs)); err != nil {
		return nil, invalid("편집 계획이 이미지 수와 맞지 않습니다")
	}

	if req.Filter != "" && !req.Filter.Valid() {
		return nil, invalid(fmt.Sprintf("알 수 없는 필터입니다: %s", req.Filter))
	}
	for _, item := range req.MediaItems {
		if item.URL == "" || !item.Type.Valid() {
			return nil, invalid("미디어 항목이 올바르지 않습니다")
		}
	}
	for _, sub := range req.Subtitles {
		if sub.MediaIndex < 0 || sub.MediaIndex >= len(req.ImageURLs) {
			return nil, invalid("자막이 존재하지 않는 미디어를 가리킵니다")
		}
	}

	return plan, nil
}

// validateDecorations - 스티커/그리기 값 검증
func validateDecorations(req *UpdateDecorationsRequest) error {
	if strings.TrimSpace(req.PostID) == "" {
		return invalid("포스트 ID가 필요합니다")
	}
	if len(req.Stickers) > MaxStickers {
		return invalid(fmt.Sprintf("스티커는 최대 %d개까지 붙일 수 있습니다", MaxStickers))
	}
	if len(req.Drawings) > MaxStrokes {
		return invalid(fmt.Sprintf("그리기 선은 최대 %d개까지 가능합니다", MaxStrokes))
	}

	for i, s := range req.Stickers {
		if err := validateSticker(s); err != nil {
			return invalid(fmt.Sprintf("스티커 %d: %s", i, err.Error()))
		}
	}
	for i, s := range req.Drawings {
		if err := validateStroke(s); err != nil {
			return invalid(fmt.Sprintf("그리기 %d: %s", i, err.Error()))
		}
	}
	return nil
}

func validateSticker(s model.Sticker) error {
	switch {
	case s.ID == "":
		return invalid("id가 필요합니다")
	case !slices.Contains(model.StickerPresets, s.Type):
		return invalid(fmt.Sprintf("알 수 없는 스티커입니다: %s", s.Type))
	case s.Scale < model.MinStickerScale || s.Scale > model.MaxStickerScale:
		return invalid("크기는 0.5~2.0 사이여야 합니다")
	case s.Rotation < 0 || s.Rotation > model.MaxStickerRotation:
		return invalid("회전은 0~360 사이여야 합니다")
	case utf8.RuneCountInString(s.CustomText) > MaxCustomTextRunes:
		return invalid(fmt.Sprintf("말풍선 텍스트는 %d자 이하여야 합니다", MaxCustomTextRunes))
	}
	return nil
}

func validateStroke(s model.Stroke) error {
	switch {
	case s.ID == "":
		return invalid("id가 필요합니다")
	case len(s.Points) == 0:
		return invalid("좌표가 없습니다")
	case len(s.Points) > MaxStrokePoints:
		return invalid("좌표가 너무 많습니다")
	case !hexColorPattern.MatchString(s.Color):
		return invalid(fmt.Sprintf("색상 형식이 올바르지 않습니다: %s", s.Color))
	case !slices.Contains(model.DrawingThicknesses, s.Thickness):
		return invalid(fmt.Sprintf("지원하지 않는 굵기입니다: %d", s.Thickness))
	}
	return nil
}
