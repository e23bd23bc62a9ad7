package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"pimon/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// LAN dashboard, any origin may connect
		return true
	},
}

// WebSocketController upgrades connections and wires them to the hub.
type WebSocketController struct {
	hub *services.WebSocketHub
}

// NewWebSocketController creates a controller registering clients with hub.
func NewWebSocketController(hub *services.WebSocketHub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// HandleWebSocket handles incoming WebSocket connections
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &services.ClientConnection{
		ID:   fmt.Sprintf("%s-%d", c.ClientIP(), time.Now().UnixNano()),
		Conn: ws,
		Send: make(chan services.WebSocketMessage, 64),
	}

	wc.hub.Register(client)

	go wc.readPump(client)
	go wc.writePump(client)
}

// readPump drains client messages; the only one we answer is ping.
func (wc *WebSocketController) readPump(client *services.ClientConnection) {
	defer func() {
		wc.hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	for {
		var msg services.WebSocketMessage
		if err := client.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}

		if msg.Type == "ping" {
			select {
			case client.Send <- services.WebSocketMessage{Type: "pong", Timestamp: time.Now()}:
			default:
			}
		}
	}
}

// writePump pushes hub messages to the client until its channel closes.
func (wc *WebSocketController) writePump(client *services.ClientConnection) {
	defer client.Conn.Close()

	for msg := range client.Send {
		if err := client.Conn.WriteJSON(msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Write error: %v", err)
			}
			return
		}
	}
	client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
