package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"story-album-server/modules/common/config"
	"story-album-server/modules/common/model"
)

const postsTable = "posts"

const summaryColumns = "id,title,created_at,image_urls,type"

var ErrPostNotFound = errors.New("post not found")

type Client struct {
	supabase *supabase.Client
	logger   zerolog.Logger
}

// NewClient - Database 클라이언트 생성
func NewClient(cfg *config.Config, logger zerolog.Logger) (*Client, error) {
	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	return &Client{
		supabase: supabaseClient,
		logger:   logger,
	}, nil
}

// CreatePost - posts 테이블에 새 앨범 저장, 생성된 id 반환
func (c *Client) CreatePost(ctx context.Context, post *model.NewPost) (string, error) {
	data, _, err := c.supabase.From(postsTable).
		Insert(post, false, "", "representation", "").
		Execute()
	if err != nil {
		return "", fmt.Errorf("failed to insert post: %w", err)
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", fmt.Errorf("failed to parse insert response: %w", err)
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return "", errors.New("no post returned from insert")
	}

	c.logger.Info().Str("postId", rows[0].ID).Msg("✅ [Database] Post created")
	return rows[0].ID, nil
}

// FetchPost - id로 앨범 조회
func (c *Client) FetchPost(ctx context.Context, postID string) (*model.Post, error) {
	c.logger.Debug().Str("postId", postID).Msg("🔍 [Database] Fetching post")

	data, _, err := c.supabase.From(postsTable).
		Select("*", "", false).
		Eq("id", postID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse post: %w", err)
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}

	return &posts[0], nil
}

// UpdateDecorations - 스티커/그리기 덮어쓰기
func (c *Client) UpdateDecorations(ctx context.Context, postID string, stickers []model.Sticker, drawings []model.Stroke) error {
	if stickers == nil {
		stickers = []model.Sticker{}
	}
	if drawings == nil {
		drawings = []model.Stroke{}
	}

	updateData := map[string]interface{}{
		"stickers": stickers,
		"drawings": drawings,
	}

	data, _, err := c.supabase.From(postsTable).
		Update(updateData, "representation", "").
		Eq("id", postID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update decorations: %w", err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse update response: %w", err)
	}
	if len(rows) == 0 {
		return ErrPostNotFound
	}

	c.logger.Info().
		Str("postId", postID).
		Int("stickers", len(stickers)).
		Int("drawings", len(drawings)).
		Msg("✅ [Database] Decorations updated")
	return nil
}

// ListRecentPosts - 최신순 앨범 목록 (UserID 있으면 내 앨범, 없으면 공개 앨범)
func (c *Client) ListRecentPosts(ctx context.Context, query model.RecentPostsQuery) ([]model.PostSummary, error) {
	builder := c.supabase.From(postsTable).
		Select(summaryColumns, "", false)

	if query.UserID != "" {
		builder = builder.Eq("user_id", query.UserID)
	} else {
		builder = builder.Eq("is_public", "true")
	}

	data, _, err := builder.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(query.Limit, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := []model.PostSummary{}
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts: %w", err)
	}

	return posts, nil
}
