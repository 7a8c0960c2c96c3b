package editsession

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Manager - postID별 방 관리
type Manager struct {
	rooms   map[string]*Room
	mutex   sync.RWMutex
	metrics Metrics
	now     func() time.Time
	logger  zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		rooms:   make(map[string]*Room),
		metrics: Metrics{StartTime: time.Now()},
		now:     time.Now,
		logger:  logger,
	}
}

// join - 방을 찾거나 만들고 클라이언트 추가 (정리 작업과 겹치지 않도록 매니저 잠금 안에서)
func (m *Manager) join(c *client) *Room {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	room, exists := m.rooms[c.postID]
	if !exists {
		room = newRoom(c.postID, now, m.logger)
		m.rooms[c.postID] = room
		m.metrics.TotalRooms++
		m.metrics.ActiveRooms++
		m.logger.Info().
			Str("postId", c.postID).
			Int("active", m.metrics.ActiveRooms).
			Msg("✅ [EditSession] Created room")
	}

	count := room.add(c, now)
	m.metrics.TotalConnections++

	m.logger.Info().
		Str("postId", c.postID).
		Str("userId", c.userID).
		Int("clients", count).
		Msg("👤 [EditSession] Client joined")
	return room
}

// leave - 클라이언트 제거 후 남은 사람들에게 user_left
func (m *Manager) leave(room *Room, c *client) {
	if !room.remove(c, m.now()) {
		return
	}

	m.logger.Info().
		Str("postId", room.postID).
		Str("userId", c.userID).
		Int("remaining", room.size()).
		Msg("👋 [EditSession] Client left")

	room.broadcastToAll(Message{
		Type:   TypeUserLeft,
		PostID: room.postID,
		UserID: c.userID,
	})
}

// SweepEmpty - 빈 방 정리
func (m *Manager) SweepEmpty() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	cleaned := 0
	for postID, room := range m.rooms {
		if room.size() == 0 {
			delete(m.rooms, postID)
			m.metrics.ActiveRooms--
			cleaned++
		}
	}

	if cleaned > 0 {
		m.logger.Info().Int("cleaned", cleaned).Int("active", m.metrics.ActiveRooms).Msg("🧹 [EditSession] Cleaned up empty rooms")
	}
	return cleaned
}

// SweepExpired - 24시간 지난 방, 2시간 동안 활동 없는 빈 방 정리
func (m *Manager) SweepExpired() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	cleaned := 0
	for postID, room := range m.rooms {
		room.mutex.RLock()
		age := now.Sub(room.createdAt)
		idle := now.Sub(room.lastActivity)
		empty := len(room.clients) == 0
		room.mutex.RUnlock()

		expired := age > roomMaxAge
		inactive := idle > roomIdleTimeout && empty
		if !expired && !inactive {
			continue
		}

		disconnected := room.closeAll()
		delete(m.rooms, postID)
		m.metrics.ActiveRooms--
		cleaned++

		reason := "expired"
		if !expired {
			reason = "inactive"
		}
		m.logger.Info().
			Str("postId", postID).
			Str("reason", reason).
			Dur("age", age).
			Dur("idle", idle).
			Int("disconnected", disconnected).
			Msg("⏰ [EditSession] Cleaned up room")
	}
	return cleaned
}

// Start - 정리 루틴 시작 (ctx 취소 시 종료)
func (m *Manager) Start(ctx context.Context) {
	go m.every(ctx, emptySweepInterval, func() { m.SweepEmpty() })
	go m.every(ctx, expiredSweepInterval, func() { m.SweepExpired() })

	m.logger.Info().
		Dur("empty", emptySweepInterval).
		Dur("expired", expiredSweepInterval).
		Msg("🔄 [EditSession] Started cleanup routines")
}

func (m *Manager) every(ctx context.Context, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

// Shutdown - 모든 연결 종료
func (m *Manager) Shutdown() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for postID, room := range m.rooms {
		room.closeAll()
		delete(m.rooms, postID)
	}
	m.metrics.ActiveRooms = 0
}

// RoomInfo - 방 상태
func (m *Manager) RoomInfo(postID string) (RoomInfo, bool) {
	m.mutex.RLock()
	room, exists := m.rooms[postID]
	m.mutex.RUnlock()

	if !exists {
		return RoomInfo{}, false
	}
	return room.info(), true
}

func (m *Manager) Metrics() Metrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.metrics
}
