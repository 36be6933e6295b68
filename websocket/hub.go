package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/gorm"
)

const (
	EventTestResult      = "test_result"
	EventLessonCompleted = "lesson_completed"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	ParentID uint
	Conn     Conn
}

// Event is a piece of child activity pushed to the child's parent.
type Event struct {
	Type    string      `json:"type"`
	ChildID uint        `json:"childId"`
	Payload interface{} `json:"payload,omitempty"`
}

type Hub struct {
	db *gorm.DB

	clientsMu sync.RWMutex
	clients   map[uint]map[Conn]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}
}

func NewHub(db *gorm.DB) *Hub {
	return &Hub{
		db:         db,
		clients:    make(map[uint]map[Conn]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish never blocks the request path; events are dropped when the queue is full.
func (h *Hub) Publish(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("⚠️ Activity queue full, dropping %s event for child %d", ev.Type, ev.ChildID)
	}
}

func (h *Hub) ClientCount(parentID uint) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients[parentID])
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			log.Printf("Client registered for parent %d", client.ParentID)
			h.clientsMu.Lock()
			if h.clients[client.ParentID] == nil {
				h.clients[client.ParentID] = make(map[Conn]struct{})
			}
			h.clients[client.ParentID][client.Conn] = struct{}{}
			h.clientsMu.Unlock()
		case client := <-h.unregister:
			log.Printf("Client unregistered for parent %d", client.ParentID)
			h.remove(client.ParentID, client.Conn)
		case ev := <-h.broadcast:
			h.dispatch(ev)
		}
	}
}

func (h *Hub) dispatch(ev Event) {
	var parentIDs []uint
	err := h.db.Model(&models.Child{}).
		Where("child_id = ?", ev.ChildID).
		Pluck("parent_id", &parentIDs).Error
	if err != nil {
		log.Printf("Error resolving parent for child %d: %v", ev.ChildID, err)
		return
	}
	if len(parentIDs) == 0 {
		return
	}
	parentID := parentIDs[0]

	h.clientsMu.RLock()
	conns := make([]Conn, 0, len(h.clients[parentID]))
	for conn := range h.clients[parentID] {
		conns = append(conns, conn)
	}
	h.clientsMu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("Error sending %s event to parent %d: %v", ev.Type, parentID, err)
			conn.Close()
			h.remove(parentID, conn)
		}
	}
}

func (h *Hub) remove(parentID uint, conn Conn) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	delete(h.clients[parentID], conn)
	if len(h.clients[parentID]) == 0 {
		delete(h.clients, parentID)
	}
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for parentID, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, parentID)
	}
}
