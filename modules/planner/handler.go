package planner

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

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
	r.HandleFunc("/api/generate-plan", h.HandleGeneratePlan).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/suggest-title", h.HandleSuggestTitle).Methods("POST", "OPTIONS")
}

// HandleGeneratePlan - POST /api/generate-plan
func (h *Handler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("❌ [Planner] Invalid generate-plan body")
		response.Error(w, http.StatusBadRequest, "잘못된 요청 형식입니다")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := h.service.ProducePlan(r.Context(), req.ToPlanRequest())
	response.JSON(w, http.StatusOK, plan)
}

// HandleSuggestTitle - POST /api/suggest-title
func (h *Handler) HandleSuggestTitle(w http.ResponseWriter, r *http.Request) {
	var req SuggestTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("❌ [Planner] Invalid suggest-title body")
		response.Error(w, http.StatusBadRequest, "잘못된 요청 형식입니다")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	title, source := h.service.SuggestTitle(r.Context(), req.Type, req.Moods)
	response.JSON(w, http.StatusOK, SuggestTitleResponse{Title: title, Source: source})
}
