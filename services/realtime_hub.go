package services

import (
	"encoding/json"
	"sync"

	"naijafit/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub tracks open websocket connections per user so a dashboard can
// see its stats refresh the moment a meal is logged or deleted.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type statsEvent struct {
	Kind  string            `json:"kind"`
	Stats *models.UserStats `json:"stats"`
}

// BroadcastStats pushes the freshly persisted stats record to every open
// connection of that user. Write errors are ignored; the read loop notices
// the dead connection and unregisters it.
func (h *RealtimeHub) BroadcastStats(userID uint, stats *models.UserStats) {
	msg, err := json.Marshal(statsEvent{Kind: "stats.updated", Stats: stats})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
