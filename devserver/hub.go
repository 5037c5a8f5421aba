package devserver

import (
	"log"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/lixenwraith/gridsketch/parameter"
)

// Message is pushed to every reload client
type Message struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

const (
	MsgHello  = "hello"
	MsgReload = "reload"
)

// client is one connected browser tab, SSE or websocket
type client struct {
	ID   string
	send chan []byte
}

// Hub fans reload messages out to connected clients
// Slow clients drop messages rather than block the broadcaster
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

func (h *Hub) register() *client {
	c := &client{
		ID:   uuid.New().String(),
		send: make(chan []byte, parameter.ReloadClientQueueSize),
	}
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(c.send)
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast encodes msg once and queues it for every client
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("encoding %s message: %v", msg.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("reload client %s is behind, dropping %s", id, msg.Type)
		}
	}
}

// closeAll disconnects every client, used on shutdown
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}
