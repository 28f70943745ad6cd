package preview

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/KunalPoonia/smart-attendance-system/internal/logging"
)

// Time allowed to write a message to a client
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The preview server only ever serves localhost development traffic
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientRegistry tracks connected live-reload clients
type clientRegistry struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newClientRegistry() *clientRegistry {
	return &clientRegistry{conns: make(map[*websocket.Conn]struct{})}
}

func (r *clientRegistry) add(c *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c] = struct{}{}
}

func (r *clientRegistry) remove(c *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, c)
}

// count returns the number of connected clients
func (r *clientRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// broadcastReload sends a reload message to every connected client and
// returns how many clients were notified. Clients that fail to receive
// the message are dropped.
func (r *clientRegistry) broadcastReload() int {
	r.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(r.conns))
	for c := range r.conns {
		conns = append(conns, c)
	}
	r.mu.Unlock()

	notified := 0
	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			logging.Warn("Failed to notify client, dropping",
				zap.String("remote_addr", c.RemoteAddr().String()),
				zap.Error(err),
			)
			_ = c.Close()
			r.remove(c)
			continue
		}
		notified++
	}
	return notified
}

// closeAll disconnects every client, used during shutdown
func (r *clientRegistry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = c.Close()
		delete(r.conns, c)
	}
}

// handleWebSocket upgrades the connection and keeps it registered until
// the client disconnects
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	remoteAddr := conn.RemoteAddr().String()
	s.clients.add(conn)
	logging.LogConnection(remoteAddr, "websocket_connected")

	defer func() {
		s.clients.remove(conn)
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "websocket_closed")
	}()

	// Read loop. The client never sends application messages; reading
	// is how we learn the connection has gone away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
