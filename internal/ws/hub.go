package ws

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks connected clients by ID and hands their messages to the game
// handlers one at a time on the Run goroutine.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	Incoming   chan *ClientMessage
	mu         sync.RWMutex

	// OnMessage is called for each incoming client message.
	OnMessage func(cm *ClientMessage)
	// OnDisconnect is called after a registered client has gone away.
	OnDisconnect func(client *Client)
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Incoming:   make(chan *ClientMessage, sendBuffer),
	}
}

// Attach wraps an upgraded connection in a new client, registers it and
// starts its pumps.
func (h *Hub) Attach(conn *websocket.Conn) *Client {
	client := NewClient(h, conn)
	h.Register <- client

	go client.WritePump()
	go client.ReadPump()
	return client
}

// Run starts the hub's main loop and returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.add(client)

		case client := <-h.Unregister:
			if !h.remove(client) {
				continue
			}
			slog.Info("client disconnected", "client", client.ID)
			if h.OnDisconnect != nil {
				h.OnDisconnect(client)
			}

		case cm := <-h.Incoming:
			if h.OnMessage != nil {
				h.OnMessage(cm)
			}
		}
	}
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, taken := h.clients[client.ID]; taken {
		slog.Warn("client ID already connected, closing", "client", client.ID)
		close(client.Send)
		return
	}
	h.clients[client.ID] = client
	slog.Info("client connected", "client", client.ID)
}

// remove reports whether client was the registered holder of its ID.
func (h *Hub) remove(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[client.ID] != client {
		return false
	}
	delete(h.clients, client.ID)
	close(client.Send)
	return true
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		delete(h.clients, id)
		close(client.Send)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
