package socket

import (
	"fmt"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

// Hub is the best-effort real-time channel. Clients register with their user
// ID and join a per-user room; message delivery broadcasts into that room.
// An offline recipient simply misses the event and catches up over HTTP.
type Hub struct {
	server *socketio.Server
	logger *zap.Logger
}

// NewHub initializes the Socket.IO server and its event handlers
func NewHub(logger *zap.Logger) *Hub {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Debug("socket connected", zap.String("socketId", c.ID()))
		return nil
	})

	server.OnEvent("/", "register", func(c socketio.Conn, userID string) {
		if userID == "" {
			logger.Warn("register event without userId", zap.String("socketId", c.ID()))
			return
		}
		c.Join(userRoom(userID))
		logger.Debug("socket registered", zap.String("socketId", c.ID()), zap.String("userId", userID))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Debug("socket disconnected", zap.String("socketId", c.ID()), zap.String("reason", reason))
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Warn("socket error", zap.Error(err))
	})

	return &Hub{server: server, logger: logger}
}

// DeliverToUser pushes an event to the user's room. Returns an error when no
// connection is registered; callers treat delivery as best-effort.
func (h *Hub) DeliverToUser(userID, event string, payload interface{}) error {
	if !h.server.BroadcastToRoom("/", userRoom(userID), event, payload) {
		return fmt.Errorf("no connected clients for user '%s'", userID)
	}
	return nil
}

// Serve runs the Socket.IO event loop
func (h *Hub) Serve() error {
	return h.server.Serve()
}

// Close shuts the event loop down
func (h *Hub) Close() error {
	return h.server.Close()
}

// Handler exposes the hub as an HTTP handler for mounting at /socket.io/
func (h *Hub) Handler() http.Handler {
	return h.server
}

func userRoom(userID string) string {
	return "user:" + userID
}
