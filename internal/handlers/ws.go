package handlers

import (
	"log"
	"net/http"
	"strconv"

	"contest-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket feed of contest events
// @Description  Connect via WebSocket to receive participation events for a contest
// @Tags         websocket
// @Param        id path int true "Contest ID"
// @Router       /ws/contests/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	cid := uint(contestID)
	h.hub.AddConnection(cid, conn)
	defer h.hub.RemoveConnection(cid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
