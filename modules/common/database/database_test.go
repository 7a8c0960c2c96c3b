package database

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-album-server/modules/common/config"
	"story-album-server/modules/common/model"
	"story-album-server/modules/planner"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.Config{
		SupabaseURL:        server.URL,
		SupabaseServiceKey: "service-key",
	}, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestCreatePost(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/posts", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":"4f6c1a57-1111-4d7e-9d5e-0d7c3a1c2b3a"}]`))
	})

	id, err := client.CreatePost(context.Background(), &model.NewPost{
		Type:      planner.TripSolo,
		Moods:     []planner.Mood{planner.MoodPeaceful},
		ImageURLs: []string{"https://cdn/a.webp"},
		EditPlan:  planner.EditPlan{planner.HeroBlock{ImageIndex: 0}},
		Filter:    model.FilterNone,
		IsPublic:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "4f6c1a57-1111-4d7e-9d5e-0d7c3a1c2b3a", id)

	assert.Equal(t, "solo", body["type"])
	assert.Equal(t, true, body["is_public"])
	plan := body["edit_plan"].([]interface{})
	assert.Equal(t, "hero", plan[0].(map[string]interface{})["type"])
}

func TestFetchPost_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.missing", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.FetchPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestFetchPost_DecodesEditPlan(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "p1",
			"created_at": "2024-05-01T10:00:00.123456+00:00",
			"title": null,
			"type": "couple",
			"moods": ["romantic"],
			"image_urls": ["a", "b"],
			"filter": "warm",
			"edit_plan": [{"type":"hero","imageIndex":0},{"type":"ending","imageIndex":1,"closingHint":"끝"}],
			"user_texts": [],
			"is_public": true
		}]`))
	})

	post, err := client.FetchPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, post.Title)
	assert.Equal(t, model.FilterWarm, post.Filter)
	require.Len(t, post.EditPlan, 2)
	assert.Equal(t, planner.EndingBlock{ImageIndex: 1, ClosingHint: "끝"}, post.EditPlan[1])
}

func TestUpdateDecorations_NoRowsIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	err := client.UpdateDecorations(context.Background(), "p1", nil, nil)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListRecentPosts_PublicQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, summaryColumns, q.Get("select"))
		assert.Equal(t, "eq.true", q.Get("is_public"))
		assert.Empty(t, q.Get("user_id"))
		assert.True(t, strings.HasPrefix(q.Get("order"), "created_at.desc"))
		assert.Equal(t, "6", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p2","title":"바다","created_at":"2024-05-02T00:00:00+00:00","image_urls":["x"],"type":"friends"}]`))
	})

	posts, err := client.ListRecentPosts(context.Background(), model.RecentPostsQuery{Limit: 6})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, planner.TripFriends, posts[0].Type)
}

func TestListRecentPosts_UserQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.user-1", q.Get("user_id"))
		assert.Empty(t, q.Get("is_public"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	posts, err := client.ListRecentPosts(context.Background(), model.RecentPostsQuery{UserID: "user-1", Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, posts)
}
