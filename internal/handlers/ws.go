package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jarodreyes/prize-survey/internal/realtime"
)

type WSHandler struct {
	hub *realtime.Hub
}

// NewWSHandler takes a nil hub when realtime is disabled; clients then get
// 503 and fall back to polling.
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket feed of session events
// @Description  Streams response_submitted, counter_updated, and results_updated events
// @Tags         websocket
// @Param        id path string true "Session ID"
// @Router       /ws/session/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "realtime disabled, poll instead"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	channel := realtime.SessionChannel(c.Param("id"))
	h.hub.AddConnection(channel, conn)
	defer h.hub.RemoveConnection(channel, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
