package model

import (
	"time"

	"story-album-server/modules/planner"
)

// MediaType - 업로드된 미디어 종류
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	return m == MediaImage || m == MediaVideo
}

// MediaItem - 사진/영상 하나
type MediaItem struct {
	URL       string    `json:"url"`
	Type      MediaType `json:"type"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// Position - 자막 위치 (미디어 기준 비율)
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Subtitle - 미디어 위 자막
type Subtitle struct {
	ID         string   `json:"id"`
	MediaIndex int      `json:"mediaIndex"`
	Text       string   `json:"text"`
	Position   Position `json:"position"`
}

// FilterType - 앨범 전체 필터
type FilterType string

const (
	FilterNone FilterType = "none"
	FilterWarm FilterType = "warm"
	FilterFilm FilterType = "film"
	FilterMono FilterType = "mono"
)

func (f FilterType) Valid() bool {
	switch f {
	case FilterNone, FilterWarm, FilterFilm, FilterMono:
		return true
	}
	return false
}

// UserText - 텍스트 슬롯에 사용자가 쓴 글
type UserText struct {
	SlotID   string `json:"slotId"`
	Original string `json:"original"`
	Polished string `json:"polished,omitempty"`
}

// Sticker - 앨범 위 스티커 (x, y는 px)
type Sticker struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`
	CustomText string  `json:"customText,omitempty"`
}

// Point - 그리기 좌표 (px)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke - 그리기 선 하나
type Stroke struct {
	ID        string  `json:"id"`
	Points    []Point `json:"points"`
	Color     string  `json:"color"`
	Thickness int     `json:"thickness"`
}

// 스티커 프리셋 ID
var StickerPresets = []string{
	"heart", "star", "sparkle", "flower", "rainbow", "cloud", "sun", "moon", "speech",
	"fighting", "love", "best", "good", "healing", "happy",
}

// 그리기 펜 굵기
var DrawingThicknesses = []int{2, 4, 6, 8}

const (
	MinStickerScale    = 0.5
	MaxStickerScale    = 2.0
	MaxStickerRotation = 360.0
)

// Post - posts 테이블 구조
type Post struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	UserID     *string          `json:"user_id"`
	Title      *string          `json:"title"`
	Type       planner.TripType `json:"type"`
	Moods      []planner.Mood   `json:"moods"`
	StartDate  *string          `json:"start_date"`
	EndDate    *string          `json:"end_date"`
	ImageURLs  []string         `json:"image_urls"`
	MediaItems []MediaItem      `json:"media_items"`
	Subtitles  []Subtitle       `json:"subtitles"`
	Filter     FilterType       `json:"filter"`
	EditPlan   planner.EditPlan `json:"edit_plan"`
	UserTexts  []UserText       `json:"user_texts"`
	IsPublic   bool             `json:"is_public"`
	Stickers   []Sticker        `json:"stickers,omitempty"`
	Drawings   []Stroke         `json:"drawings,omitempty"`
}

// NewPost - posts insert 용 행 (id, created_at은 DB가 채움)
type NewPost struct {
	UserID     *string          `json:"user_id,omitempty"`
	Title      *string          `json:"title"`
	Type       planner.TripType `json:"type"`
	Moods      []planner.Mood   `json:"moods"`
	StartDate  *string          `json:"start_date"`
	EndDate    *string          `json:"end_date"`
	ImageURLs  []string         `json:"image_urls"`
	MediaItems []MediaItem      `json:"media_items"`
	Subtitles  []Subtitle       `json:"subtitles"`
	Filter     FilterType       `json:"filter"`
	EditPlan   planner.EditPlan `json:"edit_plan"`
	UserTexts  []UserText       `json:"user_texts"`
	IsPublic   bool             `json:"is_public"`
}

// PostSummary - 최근 앨범 목록 항목
type PostSummary struct {
	ID        string           `json:"id"`
	Title     *string          `json:"title"`
	CreatedAt time.Time        `json:"created_at"`
	ImageURLs []string         `json:"image_urls"`
	Type      planner.TripType `json:"type"`
}

// RecentPostsQuery - 최근 앨범 조회 조건 (UserID 없으면 공개 앨범)
type RecentPostsQuery struct {
	UserID string
	Limit  int
}
