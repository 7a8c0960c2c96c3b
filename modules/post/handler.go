package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/database"
	"story-album-server/modules/common/response"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/create-post", h.HandleCreatePost).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/get-post", h.HandleGetPost).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/posts", h.HandleListPosts).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/posts/{id}", h.HandleGetPost).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/update-decorations", h.HandleUpdateDecorations).Methods("POST", "OPTIONS")
}

// HandleCreatePost - POST /api/create-post
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "잘못된 요청 형식입니다")
		return
	}

	id, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "포스트 생성 중 오류가 발생했습니다")
		return
	}

	response.JSON(w, http.StatusOK, CreatePostResponse{ID: id})
}

// HandleGetPost - GET /api/get-post?id= 또는 GET /api/posts/{id}
func (h *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		id = r.URL.Query().Get("id")
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "포스트 조회 중 오류가 발생했습니다")
		return
	}

	response.JSON(w, http.StatusOK, GetPostResponse{Post: post})
}

// HandleListPosts - GET /api/posts?userId=&limit=
func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(w, http.StatusBadRequest, "limit은 1 이상의 숫자여야 합니다")
			return
		}
		limit = parsed
	}

	posts, err := h.service.ListRecent(r.Context(), query.Get("userId"), limit)
	if err != nil {
		h.writeError(w, err, "앨범 목록 조회 중 오류가 발생했습니다")
		return
	}

	response.JSON(w, http.StatusOK, ListPostsResponse{Posts: posts})
}

// HandleUpdateDecorations - POST /api/update-decorations
func (h *Handler) HandleUpdateDecorations(w http.ResponseWriter, r *http.Request) {
	var req UpdateDecorationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "잘못된 요청 형식입니다")
		return
	}

	if err := h.service.UpdateDecorations(r.Context(), &req); err != nil {
		h.writeError(w, err, "저장 중 오류가 발생했습니다")
		return
	}

	response.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// writeError - 검증 400, 없음 404, 나머지 500 (원인은 로그에만)
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, database.ErrPostNotFound):
		response.Error(w, http.StatusNotFound, "포스트를 찾을 수 없습니다")
	default:
		h.logger.Error().Err(err).Msg("❌ [Post] Request failed")
		response.Error(w, http.StatusInternalServerError, fallback)
	}
}
