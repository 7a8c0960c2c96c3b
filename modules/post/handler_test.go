package post

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-album-server/modules/common/database"
	"story-album-server/modules/common/model"
	"story-album-server/modules/planner"
)

const testPostID = "6f1d2c3b-4a59-4e6f-8a7b-9c0d1e2f3a4b"

type fakeStore struct {
	created     *model.NewPost
	createErr   error
	posts       map[string]*model.Post
	decorated   string
	stickers    []model.Sticker
	drawings    []model.Stroke
	recentQuery model.RecentPostsQuery
	recent      []model.PostSummary
}

func (f *fakeStore) CreatePost(_ context.Context, post *model.NewPost) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = post
	return testPostID, nil
}

func (f *fakeStore) FetchPost(_ context.Context, postID string) (*model.Post, error) {
	if p, ok := f.posts[postID]; ok {
		return p, nil
	}
	return nil, database.ErrPostNotFound
}

func (f *fakeStore) UpdateDecorations(_ context.Context, postID string, stickers []model.Sticker, drawings []model.Stroke) error {
	if _, ok := f.posts[postID]; !ok {
		return database.ErrPostNotFound
	}
	f.decorated = postID
	f.stickers = stickers
	f.drawings = drawings
	return nil
}

func (f *fakeStore) ListRecentPosts(_ context.Context, query model.RecentPostsQuery) ([]model.PostSummary, error) {
	f.recentQuery = query
	return f.recent, nil
}

func setupRouter(store *fakeStore) *mux.Router {
	r := mux.NewRouter()
	NewHandler(NewService(store, zerolog.Nop()), zerolog.Nop()).RegisterRoutes(r)
	return r
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	case nil:
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func validCreateBody() map[string]interface{} {
	plan := planner.NewPlanner(func(int) int { return 0 }).Plan(planner.PlanRequest{
		ImageCount: 3,
		TripType:   planner.TripFriends,
		Moods:      []planner.Mood{planner.MoodFun},
	})
	return map[string]interface{}{
		"title":     "  부산 여행 ",
		"type":      "friends",
		"moods":     []string{"fun"},
		"imageUrls": []string{"https://cdn/a.webp", "https://cdn/b.webp", "https://cdn/c.webp"},
		"editPlan":  plan.EditPlan,
		"userTexts": []map[string]string{{"slotId": "intro", "original": "출발!"}},
	}
}

func TestHandleCreatePost_Success(t *testing.T) {
	store := &fakeStore{}
	router := setupRouter(store)

	w := performRequest(router, http.MethodPost, "/api/create-post", validCreateBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CreatePostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testPostID, resp.ID)

	require.NotNil(t, store.created)
	assert.True(t, store.created.IsPublic)
	assert.Equal(t, model.FilterNone, store.created.Filter)
	require.NotNil(t, store.created.Title)
	assert.Equal(t, "부산 여행", *store.created.Title)
	assert.Nil(t, store.created.StartDate)
	assert.NotNil(t, store.created.MediaItems)
	assert.NotNil(t, store.created.Subtitles)
	assert.Nil(t, store.created.UserID)
	assert.IsType(t, planner.HeroBlock{}, store.created.EditPlan[0])
}

func TestHandleCreatePost_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(body map[string]interface{})
		wantMsg string
	}{
		{name: "no images", mutate: func(b map[string]interface{}) { b["imageUrls"] = []string{} }, wantMsg: "최소 1개의 이미지가 필요합니다"},
		{name: "no type", mutate: func(b map[string]interface{}) { delete(b, "type") }, wantMsg: "여행 타입이 필요합니다"},
		{name: "no editPlan", mutate: func(b map[string]interface{}) { delete(b, "editPlan") }, wantMsg: "편집 계획이 필요합니다"},
		{name: "empty editPlan", mutate: func(b map[string]interface{}) { b["editPlan"] = []interface{}{} }, wantMsg: "편집 계획이 필요합니다"},
		{name: "unknown block", mutate: func(b map[string]interface{}) {
			b["editPlan"] = []map[string]interface{}{{"type": "carousel"}}
		}, wantMsg: "편집 계획 형식이 올바르지 않습니다"},
		{name: "index beyond images", mutate: func(b map[string]interface{}) {
			b["editPlan"] = []map[string]interface{}{{"type": "hero", "imageIndex": 0}, {"type": "ending", "imageIndex": 3, "closingHint": ""}}
		}, wantMsg: "편집 계획이 이미지 수와 맞지 않습니다"},
		{name: "unknown filter", mutate: func(b map[string]interface{}) { b["filter"] = "sepia" }, wantMsg: "알 수 없는 필터입니다: sepia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			body := validCreateBody()
			tt.mutate(body)

			w := performRequest(setupRouter(store), http.MethodPost, "/api/create-post", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
			assert.Nil(t, store.created)
		})
	}
}

func TestHandleCreatePost_StoreFailure(t *testing.T) {
	router := setupRouter(&fakeStore{createErr: errors.New("postgrest: 500")})

	w := performRequest(router, http.MethodPost, "/api/create-post", validCreateBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "포스트 생성 중 오류가 발생했습니다", decodeError(t, w))
}

func TestHandleGetPost(t *testing.T) {
	title := "제주"
	store := &fakeStore{posts: map[string]*model.Post{
		testPostID: {ID: testPostID, Title: &title, Type: planner.TripSolo},
	}}
	router := setupRouter(store)

	for _, path := range []string{"/api/get-post?id=" + testPostID, "/api/posts/" + testPostID} {
		w := performRequest(router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp GetPostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testPostID, resp.Post.ID)
		assert.Equal(t, "제주", *resp.Post.Title)
	}

	w := performRequest(router, http.MethodGet, "/api/get-post", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "포스트 ID가 필요합니다", decodeError(t, w))

	w = performRequest(router, http.MethodGet, "/api/get-post?id=not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodGet, "/api/posts/00000000-0000-4000-8000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "포스트를 찾을 수 없습니다", decodeError(t, w))
}

func TestHandleListPosts(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantLimit int
		wantUser  string
	}{
		{name: "defaults", path: "/api/posts", wantCode: http.StatusOK, wantLimit: DefaultRecentLimit},
		{name: "user albums", path: "/api/posts?userId=u1&limit=3", wantCode: http.StatusOK, wantLimit: 3, wantUser: "u1"},
		{name: "clamped", path: "/api/posts?limit=500", wantCode: http.StatusOK, wantLimit: MaxRecentLimit},
		{name: "bad limit", path: "/api/posts?limit=abc", wantCode: http.StatusBadRequest},
		{name: "zero limit", path: "/api/posts?limit=0", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{recent: []model.PostSummary{{ID: testPostID, Type: planner.TripFamily}}}
			w := performRequest(setupRouter(store), http.MethodGet, tt.path, nil)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantLimit, store.recentQuery.Limit)
			assert.Equal(t, tt.wantUser, store.recentQuery.UserID)

			var resp ListPostsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Posts, 1)
		})
	}
}

func TestHandleUpdateDecorations(t *testing.T) {
	validSticker := model.Sticker{ID: "sticker-1", Type: "heart", X: 10, Y: 20, Scale: 1, Rotation: 45}
	validStroke := model.Stroke{ID: "stroke-1", Points: []model.Point{{X: 1, Y: 2}}, Color: "#FF6B6B", Thickness: 4}

	tests := []struct {
		name     string
		req      UpdateDecorationsRequest
		wantCode int
		wantMsg  string
	}{
		{name: "ok", req: UpdateDecorationsRequest{PostID: testPostID, Stickers: []model.Sticker{validSticker}, Drawings: []model.Stroke{validStroke}}, wantCode: http.StatusOK},
		{name: "clear all", req: UpdateDecorationsRequest{PostID: testPostID}, wantCode: http.StatusOK},
		{name: "missing post id", req: UpdateDecorationsRequest{}, wantCode: http.StatusBadRequest, wantMsg: "포스트 ID가 필요합니다"},
		{name: "unknown sticker", req: UpdateDecorationsRequest{PostID: testPostID, Stickers: []model.Sticker{{ID: "s", Type: "dragon", Scale: 1}}}, wantCode: http.StatusBadRequest, wantMsg: "스티커 0: 알 수 없는 스티커입니다: dragon"},
		{name: "scale too big", req: UpdateDecorationsRequest{PostID: testPostID, Stickers: []model.Sticker{{ID: "s", Type: "star", Scale: 3}}}, wantCode: http.StatusBadRequest, wantMsg: "스티커 0: 크기는 0.5~2.0 사이여야 합니다"},
		{name: "bad color", req: UpdateDecorationsRequest{PostID: testPostID, Drawings: []model.Stroke{{ID: "d", Points: []model.Point{{}}, Color: "red", Thickness: 2}}}, wantCode: http.StatusBadRequest, wantMsg: "그리기 0: 색상 형식이 올바르지 않습니다: red"},
		{name: "bad thickness", req: UpdateDecorationsRequest{PostID: testPostID, Drawings: []model.Stroke{{ID: "d", Points: []model.Point{{}}, Color: "#000000", Thickness: 5}}}, wantCode: http.StatusBadRequest, wantMsg: "그리기 0: 지원하지 않는 굵기입니다: 5"},
		{name: "unknown post", req: UpdateDecorationsRequest{PostID: "00000000-0000-4000-8000-000000000000"}, wantCode: http.StatusNotFound, wantMsg: "포스트를 찾을 수 없습니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{posts: map[string]*model.Post{testPostID: {ID: testPostID}}}
			w := performRequest(setupRouter(store), http.MethodPost, "/api/update-decorations", tt.req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, w.Body.String())
				assert.Equal(t, testPostID, store.decorated)
				assert.NotNil(t, store.stickers)
				assert.NotNil(t, store.drawings)
				return
			}
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
		})
	}
}
