package handlers

import (
	"log"
	"net/http"
	"sync"

	"optic-backend/internal/timeutil"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChangeEvent is pushed to every connected client after a collection
// mutates, so open UIs can refetch without polling.
type ChangeEvent struct {
	Collection string `json:"collection"`
	At         string `json:"at"`
}

// EventsHandler fans store change notifications out to WebSocket
// clients.
type EventsHandler struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan ChangeEvent
}

func NewEventsHandler() *EventsHandler {
	h := &EventsHandler{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan ChangeEvent, 64),
	}
	go h.handleBroadcast()
	return h
}

// NotifyChange queues a change event. Called from the store's change
// hook; never blocks the mutation path.
func (h *EventsHandler) NotifyChange(collection string) {
	event := ChangeEvent{
		Collection: collection,
		At:         timeutil.Now().Format("2006-01-02T15:04:05Z07:00"),
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Events] Broadcast buffer full, dropping event for %s", collection)
	}
}

func (h *EventsHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			h.clientsMux.Lock()
			delete(h.clients, conn)
			h.clientsMux.Unlock()
			break
		}
	}
}

func (h *EventsHandler) handleBroadcast() {
	for event := range h.broadcast {
		h.clientsMux.Lock()
		for client := range h.clients {
			err := client.WriteJSON(event)
			if err != nil {
				client.Close()
				delete(h.clients, client)
			}
		}
		h.clientsMux.Unlock()
	}
}
