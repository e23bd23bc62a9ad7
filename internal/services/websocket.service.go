package services

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"` // "sample", "pong", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// ClientConnection represents a connected WebSocket client
type ClientConnection struct {
	ID   string
	Conn *websocket.Conn
	Send chan WebSocketMessage
}

// WebSocketHub pushes each new Sample to all connected clients. It is
// a read-only consumer of the History; slow clients drop frames rather
// than backing up the hub.
type WebSocketHub struct {
	history    *History
	interval   time.Duration
	clients    map[string]*ClientConnection
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	done       chan struct{}

	lastSent time.Time
}

// NewWebSocketHub creates a hub broadcasting from history on the given
// cadence. Call Run in a goroutine to start it.
func NewWebSocketHub(history *History, interval time.Duration) *WebSocketHub {
	return &WebSocketHub{
		history:    history,
		interval:   interval,
		clients:    make(map[string]*ClientConnection),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		done:       make(chan struct{}),
	}
}

// Run manages the hub's event loop until Stop is called.
func (h *WebSocketHub) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case <-ticker.C:
			sample, ok := h.history.Latest()
			if !ok || !sample.Timestamp.After(h.lastSent) {
				continue
			}
			h.lastSent = sample.Timestamp

			msg := WebSocketMessage{
				Type:      "sample",
				Timestamp: sample.Timestamp,
				Data:      sample,
			}

			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this frame
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a new client to the hub
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *WebSocketHub) Unregister(clientID string) {
	h.unregister <- clientID
}

// Stop gracefully stops the hub
func (h *WebSocketHub) Stop() {
	close(h.done)
}
