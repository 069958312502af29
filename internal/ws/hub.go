package ws

import (
	"encoding/json"
	"log"
	"sync"

	"contest-backend/internal/models"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans contest events out to websocket subscribers, keyed by contest id.
// External consumers (a notification mailer, a live dashboard) plug in here.
type Hub struct {
	mu       sync.RWMutex
	contests map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		contests: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(contestID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.contests[contestID] == nil {
		h.contests[contestID] = make(map[*websocket.Conn]bool)
	}
	h.contests[contestID][conn] = true
	log.Printf("ws: client subscribed to contest %d (total: %d)", contestID, len(h.contests[contestID]))
}

func (h *Hub) RemoveConnection(contestID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.contests[contestID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.contests, contestID)
		}
		log.Printf("ws: client unsubscribed from contest %d", contestID)
	}
}

// Broadcast takes the write lock: failed connections are removed from the
// map inline, and broadcasts arrive from concurrent request goroutines.
func (h *Hub) Broadcast(contestID uint, message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.contests[contestID]
	if !ok {
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.contests, contestID)
	}
}

func (h *Hub) ConnectionCount(contestID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.contests[contestID])
}

// ParticipationRecorded satisfies the participation service's Notifier.
func (h *Hub) ParticipationRecorded(contestID uint, p models.Participation) {
	h.Broadcast(contestID, WSMessage{
		Type: "participation_recorded",
		Data: p,
	})
}
