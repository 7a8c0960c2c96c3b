package post

import (
	"encoding/json"

	"story-album-server/modules/common/model"
	"story-album-server/modules/planner"
)

const (
	DefaultRecentLimit = 6
	MaxRecentLimit     = 50

	MaxStickers        = 200
	MaxStrokes         = 500
	MaxStrokePoints    = 5000
	MaxCustomTextRunes = 50
)

// CreatePostRequest - POST /api/create-post 본문
// editPlan은 블록 검증 메시지를 따로 주기 위해 원본 그대로 받음
type CreatePostRequest struct {
	Title      string            `json:"title"`
	Type       planner.TripType  `json:"type"`
	Moods      []planner.Mood    `json:"moods"`
	StartDate  string            `json:"startDate,omitempty"`
	EndDate    string            `json:"endDate,omitempty"`
	ImageURLs  []string          `json:"imageUrls"`
	EditPlan   json.RawMessage   `json:"editPlan"`
	UserTexts  []model.UserText  `json:"userTexts"`
	MediaItems []model.MediaItem `json:"mediaItems,omitempty"`
	Subtitles  []model.Subtitle  `json:"subtitles,omitempty"`
	Filter     model.FilterType  `json:"filter,omitempty"`
	UserID     string            `json:"userId,omitempty"`
}

type CreatePostResponse struct {
	ID string `json:"id"`
}

type GetPostResponse struct {
	Post *model.Post `json:"post"`
}

type ListPostsResponse struct {
	Posts []model.PostSummary `json:"posts"`
}

// UpdateDecorationsRequest - POST /api/update-decorations 본문
type UpdateDecorationsRequest struct {
	PostID   string          `json:"postId"`
	Stickers []model.Sticker `json:"stickers"`
	Drawings []model.Stroke  `json:"drawings"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ValidationError - 400으로 내려갈 사용자 메시지
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
