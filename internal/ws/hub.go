package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"fleet-service/internal/model"
)

// Hub tracks connected dashboard clients and fans location events out
// to all of them. Slow clients are dropped instead of blocking the
// broadcast path.
type Hub struct {
	log zerolog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:     log.With().Str("component", "ws_hub").Logger(),
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Debug().Int("clients", count).Msg("client connected")
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.log.Debug().Int("clients", count).Msg("client disconnected")
}

// Broadcast serializes the event once and queues it on every client.
// Clients whose send buffer is full are disconnected.
func (h *Hub) Broadcast(event model.LocationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal location event")
		return
	}

	h.mu.RLock()
	var stale []*Client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unregister(c)
	}
}

// ClientCount is used by tests and the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
