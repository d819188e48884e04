package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans events out to websocket connections and in-process subscribers,
// keyed by channel. It is the enabled Sink variant.
type Hub struct {
	mu       sync.Mutex
	conns    map[string]map[*websocket.Conn]bool
	handlers map[string]map[int]Handler
	nextID   int
}

func NewHub() *Hub {
	return &Hub{
		conns:    make(map[string]map[*websocket.Conn]bool),
		handlers: make(map[string]map[int]Handler),
	}
}

func (h *Hub) Enabled() bool { return true }

func (h *Hub) AddConnection(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conns[channel] == nil {
		h.conns[channel] = make(map[*websocket.Conn]bool)
	}
	h.conns[channel][conn] = true
	log.Printf("realtime: client connected to %s (total: %d)", channel, len(h.conns[channel]))
}

func (h *Hub) RemoveConnection(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.conns[channel]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.conns, channel)
		}
		log.Printf("realtime: client disconnected from %s", channel)
	}
}

func (h *Hub) Subscribe(channel string, fn Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.handlers[channel] == nil {
		h.handlers[channel] = make(map[int]Handler)
	}
	id := h.nextID
	h.nextID++
	h.handlers[channel][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if fns, ok := h.handlers[channel]; ok {
			delete(fns, id)
			if len(fns) == 0 {
				delete(h.handlers, channel)
			}
		}
	}
}

// Publish is fire-and-forget: write failures drop the connection, handler
// and marshal failures are logged and swallowed.
func (h *Hub) Publish(channel, event string, data interface{}) {
	h.mu.Lock()
	conns := h.conns[channel]
	fns := make([]Handler, 0, len(h.handlers[channel]))
	for _, fn := range h.handlers[channel] {
		fns = append(fns, fn)
	}

	if len(conns) > 0 {
		payload, err := json.Marshal(Message{Type: event, Data: data})
		if err != nil {
			log.Printf("realtime: marshal error: %v", err)
		} else {
			for conn := range conns {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					log.Printf("realtime: write error: %v", err)
					conn.Close()
					delete(conns, conn)
				}
			}
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(event, data)
	}
}
