package editsession

import (
	"time"

	"story-album-server/modules/common/model"
)

// 메시지 타입
const (
	TypeUserJoined     = "user_joined"
	TypeUserLeft       = "user_left"
	TypeStickersUpdate = "stickers_update"
	TypeDrawingsUpdate = "drawings_update"
	TypeCursorMove     = "cursor_move"
)

const (
	emptySweepInterval   = 5 * time.Minute
	expiredSweepInterval = 30 * time.Minute

	roomMaxAge      = 24 * time.Hour
	roomIdleTimeout = 2 * time.Hour

	sendBufferSize = 256
	maxMessageSize = 4 << 20
	writeWait      = 10 * time.Second
)

// Message - 꾸미기 방 메시지
// 페이로드는 포인터: 빈 배열(전체 삭제)과 0 좌표를 그대로 중계하고, 없는 필드만 생략
type Message struct {
	Type     string           `json:"type"`
	PostID   string           `json:"postId"`
	UserID   string           `json:"userId"`
	Stickers *[]model.Sticker `json:"stickers,omitempty"`
	Drawings *[]model.Stroke  `json:"drawings,omitempty"`
	CursorX  *float64         `json:"cursorX,omitempty"`
	CursorY  *float64         `json:"cursorY,omitempty"`
}

// count - 로그용 배열 길이 (없으면 0)
func count[T any](items *[]T) int {
	if items == nil {
		return 0
	}
	return len(*items)
}

// RoomInfo - 방 상태 조회 응답
type RoomInfo struct {
	PostID       string    `json:"postId"`
	Users        []string  `json:"users"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

// Metrics - 서버 메트릭
type Metrics struct {
	TotalRooms       int       `json:"totalRooms"`
	ActiveRooms      int       `json:"activeRooms"`
	TotalConnections int       `json:"totalConnections"`
	StartTime        time.Time `json:"startTime"`
}
