package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/bnema/colorpref/internal/ui/theme"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	messageTypeTheme = "theme"
)

// Message is pushed to websocket clients on every change.
type Message struct {
	Type string `json:"type"`
	theme.Snapshot
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// write serializes writes; gorilla connections support one writer at a time.
func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

// Hub fans theme snapshots out to websocket clients.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	last     []byte
	upgrader websocket.Upgrader
	onCount  func(int)
	logger   zerolog.Logger
}

// NewHub creates a hub. onCount, if non-nil, is called with the client count
// whenever a client connects or leaves.
func NewHub(logger zerolog.Logger, onCount func(int)) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		onCount: onCount,
		logger:  logger,
	}
}

// ServeWS upgrades the request and sends current() right away, then every
// broadcast until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, current func() theme.Snapshot) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{conn: conn}
	if err := h.add(c, current); err != nil {
		_ = conn.Close()
		return
	}
	defer h.remove(c)

	done := make(chan struct{})
	defer close(done)
	go h.ping(c, done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) ping(c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast sends snap to every client. Consecutive identical snapshots are
// sent once.
func (h *Hub) Broadcast(snap theme.Snapshot) {
	data, err := encodeMessage(snap)
	if err != nil {
		h.logger.Error().Err(err).Msg("encode theme message")
		return
	}

	h.mu.Lock()
	if string(h.last) == string(data) {
		h.mu.Unlock()
		return
	}
	h.last = data
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.write(websocket.TextMessage, data); err != nil {
			h.logger.Debug().Err(err).Msg("dropping websocket client")
			h.remove(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		_ = c.write(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = c.conn.Close()
	}
	h.notifyCount(0)
}

// add sends the current snapshot and registers c under the hub lock, so no
// broadcast can slip in between.
func (h *Hub) add(c *client, current func() theme.Snapshot) error {
	h.mu.Lock()
	data, err := encodeMessage(current())
	if err == nil {
		err = c.write(websocket.TextMessage, data)
	}
	if err != nil {
		h.mu.Unlock()
		return err
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.notifyCount(n)
	return nil
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	_ = c.conn.Close()
	h.notifyCount(n)
}

func (h *Hub) notifyCount(n int) {
	if h.onCount != nil {
		h.onCount(n)
	}
}

func encodeMessage(snap theme.Snapshot) ([]byte, error) {
	return json.Marshal(Message{Type: messageTypeTheme, Snapshot: snap})
}
