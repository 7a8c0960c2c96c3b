package cli

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/middleware"
	"story-album-server/modules/common/response"
)

type routeRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

// NewRouter - 공통 미들웨어 + 헬스 체크 + 각 모듈 라우트
func NewRouter(log zerolog.Logger, modules ...routeRegistrar) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	for _, m := range modules {
		m.RegisterRoutes(r)
	}

	return r
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "story-album",
	})
}
