package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// upgrader configures the WebSocket upgrader.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		// Origin checking is handled by CORS middleware
		return true
	},
}

// handleEvents upgrades the connection and streams newly created jokes
// plus periodic heartbeat markers until the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sub := s.hub.Subscribe()

	go s.writePump(conn, sub)
	go s.readPump(conn, sub)
}

// writePump drains the subscriber channel onto the connection.
// A write failure (slow or dead client) drops the subscriber; the closed
// channel then ends the loop.
func (s *Server) writePump(conn *websocket.Conn, sub *Subscriber) {
	defer conn.Close()

	writeTimeout := time.Duration(s.wsCfg.WriteTimeout) * time.Second
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	for message := range sub.Receive() {
		//nolint:errcheck // Best-effort deadline; write error caught below
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.hub.Unsubscribe(sub)
			return
		}
	}

	// Hub closed the channel
	//nolint:errcheck // Best-effort close message
	conn.WriteMessage(websocket.CloseMessage, nil)
}

// readPump consumes (and discards) inbound frames so the connection's
// close handshake and disconnect detection work.
func (s *Server) readPump(conn *websocket.Conn, sub *Subscriber) {
	defer func() {
		s.hub.Unsubscribe(sub)
		conn.Close()
	}()

	conn.SetReadLimit(int64(s.wsCfg.MaxMessageSize))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read error", "subscriber", sub.ID, "error", err)
			}
			return
		}
	}
}
