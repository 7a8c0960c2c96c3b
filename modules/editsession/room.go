package editsession

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// client - 방에 연결된 사용자 하나
type client struct {
	conn   *websocket.Conn
	postID string
	userID string
	send   chan []byte
}

// Room - 같은 앨범을 꾸미는 연결들
type Room struct {
	postID       string
	clients      map[string]*client
	mutex        sync.RWMutex
	createdAt    time.Time
	lastActivity time.Time
	logger       zerolog.Logger
}

func newRoom(postID string, now time.Time, logger zerolog.Logger) *Room {
	return &Room{
		postID:       postID,
		clients:      make(map[string]*client),
		createdAt:    now,
		lastActivity: now,
		logger:       logger,
	}
}

// add - 같은 userID가 이미 있으면 이전 연결을 닫고 교체
func (r *Room) add(c *client, now time.Time) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if old, exists := r.clients[c.userID]; exists {
		close(old.send)
	}
	r.clients[c.userID] = c
	r.lastActivity = now
	return len(r.clients)
}

// remove - 해당 연결이 아직 방에 있을 때만 제거
func (r *Room) remove(c *client, now time.Time) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, exists := r.clients[c.userID]
	if !exists || current != c {
		return false
	}
	close(c.send)
	delete(r.clients, c.userID)
	r.lastActivity = now
	return true
}

func (r *Room) touch(now time.Time) {
	r.mutex.Lock()
	r.lastActivity = now
	r.mutex.Unlock()
}

// broadcastToAll - 자신 포함 모두에게
func (r *Room) broadcastToAll(message Message) {
	r.broadcast("", message)
}

// broadcastToOthers - 보낸 사람 제외
func (r *Room) broadcastToOthers(senderUserID string, message Message) {
	r.broadcast(senderUserID, message)
}

// broadcast - 버퍼가 찬 클라이언트는 끊음 (맵 수정이 있으므로 쓰기 잠금)
func (r *Room) broadcast(skipUserID string, message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		r.logger.Error().Err(err).Str("type", message.Type).Msg("❌ [EditSession] Failed to marshal message")
		return
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for userID, c := range r.clients {
		if userID == skipUserID {
			continue
		}
		select {
		case c.send <- messageBytes:
		default:
			close(c.send)
			delete(r.clients, userID)
			r.logger.Warn().Str("postId", r.postID).Str("userId", userID).Msg("⚠️ [EditSession] Slow client dropped")
		}
	}
}

// closeAll - 모든 연결 종료 (만료/서버 종료)
func (r *Room) closeAll() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	n := len(r.clients)
	for userID, c := range r.clients {
		close(c.send)
		delete(r.clients, userID)
	}
	return n
}

func (r *Room) size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.clients)
}

func (r *Room) info() RoomInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make([]string, 0, len(r.clients))
	for userID := range r.clients {
		users = append(users, userID)
	}
	sort.Strings(users)

	return RoomInfo{
		PostID:       r.postID,
		Users:        users,
		CreatedAt:    r.createdAt,
		LastActivity: r.lastActivity,
	}
}
