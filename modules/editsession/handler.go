package editsession

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	manager *Manager
	logger  zerolog.Logger
}

func NewHandler(manager *Manager, logger zerolog.Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ws/edit", h.HandleWebSocket)
	r.HandleFunc("/ws/rooms/{postId}", h.HandleRoomInfo).Methods("GET")
	r.HandleFunc("/metrics", h.HandleMetrics).Methods("GET")
	r.HandleFunc("/admin/cleanup", h.HandleForceCleanup).Methods("POST")
}

// HandleWebSocket - GET /ws/edit?post=<id>&user=<id>
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("post")
	userID := r.URL.Query().Get("user")
	if postID == "" || userID == "" {
		response.Error(w, http.StatusBadRequest, "post와 user 파라미터가 필요합니다")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("❌ [EditSession] WebSocket upgrade failed")
		return
	}

	c := &client{
		conn:   conn,
		postID: postID,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}

	room := h.manager.join(c)

	go c.writePump()
	go h.manager.readPump(room, c)

	room.broadcastToAll(Message{
		Type:   TypeUserJoined,
		PostID: postID,
		UserID: userID,
	})
}

// HandleRoomInfo - GET /ws/rooms/{postId}
func (h *Handler) HandleRoomInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := h.manager.RoomInfo(mux.Vars(r)["postId"])
	if !ok {
		response.Error(w, http.StatusNotFound, "방을 찾을 수 없습니다")
		return
	}
	response.JSON(w, http.StatusOK, info)
}

// HandleMetrics - GET /metrics
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.manager.Metrics())
}

// CleanupResponse - 강제 정리 결과
type CleanupResponse struct {
	Status  string `json:"status"`
	Empty   int    `json:"empty"`
	Expired int    `json:"expired"`
}

// HandleForceCleanup - POST /admin/cleanup (빈 방, 만료된 방 즉시 정리)
func (h *Handler) HandleForceCleanup(w http.ResponseWriter, r *http.Request) {
	empty := h.manager.SweepEmpty()
	expired := h.manager.SweepExpired()

	h.logger.Info().Int("empty", empty).Int("expired", expired).Msg("🧹 [EditSession] Forced cleanup")
	response.JSON(w, http.StatusOK, CleanupResponse{
		Status:  "Cleanup completed",
		Empty:   empty,
		Expired: expired,
	})
}
