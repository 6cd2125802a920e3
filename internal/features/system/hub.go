package system

import (
	"encoding/json"
	"sync"

	"sales-crm/internal/features/activity"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans activity entries out to the websocket connections of the
// owner they belong to. It satisfies activity.Publisher, so the outbox
// pushes every persisted entry through here.
type Hub struct {
	logger *zap.Logger

	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger,
		conns:  make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(ownerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[ownerID] == nil {
		h.conns[ownerID] = make(map[*websocket.Conn]bool)
	}
	h.conns[ownerID][conn] = true
}

func (h *Hub) Unregister(ownerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[ownerID], conn)
	if len(h.conns[ownerID]) == 0 {
		delete(h.conns, ownerID)
	}
}

// Publish sends the entry to every open connection of its owner.
// Connections that fail to take the write are dropped; the client is
// expected to reconnect.
func (h *Hub) Publish(entry activity.Activity) {
	payload, err := json.Marshal(entry)
	if err != nil {
		h.logger.Error("failed to encode activity for stream", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[entry.OwnerID] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns[entry.OwnerID], conn)
		}
	}
}
