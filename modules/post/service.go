package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/database"
	"story-album-server/modules/common/model"
)

// Store - posts 저장소 (database.Client가 구현)
type Store interface {
	CreatePost(ctx context.Context, post *model.NewPost) (string, error)
	FetchPost(ctx context.Context, postID string) (*model.Post, error)
	UpdateDecorations(ctx context.Context, postID string, stickers []model.Sticker, drawings []model.Stroke) error
	ListRecentPosts(ctx context.Context, query model.RecentPostsQuery) ([]model.PostSummary, error)
}

type Service struct {
	store  Store
	logger zerolog.Logger
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CreatePost - 요청 검증 후 공개 앨범으로 저장
func (s *Service) CreatePost(ctx context.Context, req *CreatePostRequest) (string, error) {
	plan, err := validateCreate(req)
	if err != nil {
		return "", err
	}

	row := &model.NewPost{
		Title:      optional(req.Title),
		Type:       req.Type,
		Moods:      orEmpty(req.Moods),
		StartDate:  optional(req.StartDate),
		EndDate:    optional(req.EndDate),
		ImageURLs:  req.ImageURLs,
		MediaItems: orEmpty(req.MediaItems),
		Subtitles:  orEmpty(req.Subtitles),
		Filter:     req.Filter,
		EditPlan:   plan,
		UserTexts:  orEmpty(req.UserTexts),
		IsPublic:   true,
	}
	if row.Filter == "" {
		row.Filter = model.FilterNone
	}
	if req.UserID != "" {
		row.UserID = &req.UserID
	}

	id, err := s.store.CreatePost(ctx, row)
	if err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().
		Str("postId", id).
		Str("type", string(req.Type)).
		Int("images", len(req.ImageURLs)).
		Int("blocks", len(plan)).
		Msg("✅ [Post] Album created")
	return id, nil
}

// GetPost - 앨범 조회 (uuid 형식이 아니면 not found)
func (s *Service) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, invalid("포스트 ID가 필요합니다")
	}
	if _, err := uuid.Parse(postID); err != nil {
		return nil, database.ErrPostNotFound
	}

	return s.store.FetchPost(ctx, postID)
}

// ListRecent - 최근 앨범 (limit 0이면 기본값, 최대 MaxRecentLimit)
func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]model.PostSummary, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	posts, err := s.store.ListRecentPosts(ctx, model.RecentPostsQuery{
		UserID: strings.TrimSpace(userID),
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	return posts, nil
}

// UpdateDecorations - 스티커/그리기 전체 교체
func (s *Service) UpdateDecorations(ctx context.Context, req *UpdateDecorationsRequest) error {
	if err := validateDecorations(req); err != nil {
		return err
	}
	if _, err := uuid.Parse(req.PostID); err != nil {
		return database.ErrPostNotFound
	}

	return s.store.UpdateDecorations(ctx, req.PostID, orEmpty(req.Stickers), orEmpty(req.Drawings))
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
