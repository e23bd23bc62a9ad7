package routes

import (
	"pimon/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the live stats stream.
func RegisterWebSocketRoutes(r *gin.Engine, ws *controllers.WebSocketController) {
	r.GET("/ws", ws.HandleWebSocket)
}
