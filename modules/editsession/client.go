package editsession

import (
	"time"

	"github.com/gorilla/websocket"
)

// readPump - 클라이언트 메시지를 방에 중계
func (m *Manager) readPump(room *Room, c *client) {
	defer func() {
		m.leave(room, c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				m.logger.Warn().Err(err).Str("userId", c.userID).Msg("⚠️ [EditSession] WebSocket read error")
			}
			return
		}

		// 보낸 사람/방은 서버가 정함
		message.UserID = c.userID
		message.PostID = c.postID

		switch message.Type {
		case TypeStickersUpdate:
			m.logger.Debug().Str("userId", c.userID).Int("count", count(message.Stickers)).Msg("[EditSession] stickers updated")
			room.touch(m.now())
		case TypeDrawingsUpdate:
			m.logger.Debug().Str("userId", c.userID).Int("count", count(message.Drawings)).Msg("[EditSession] drawings updated")
			room.touch(m.now())
		case TypeCursorMove:
			// 커서 움직임은 로깅하지 않음
		default:
			m.logger.Debug().Str("type", message.Type).Str("userId", c.userID).Msg("[EditSession] Ignoring message")
			continue
		}

		room.broadcastToOthers(c.userID, message)
	}
}

// writePump - send 채널을 소켓으로
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
