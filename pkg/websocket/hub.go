package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"rideadmin/pkg/logger"
)

var ErrHubClosed = errors.New("websocket hub closed")

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *logger.Logger
}

// Event is the envelope every broadcast is wrapped in.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     log.WithField("component", "websocket_hub"),
	}
}

// Run owns client membership until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.sendToAll(message)
		}
	}
}

// Broadcast queues an event for every connected client. Delivery is best effort.
func (h *Hub) Broadcast(event string, payload interface{}) error {
	data, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.logger.WithField("client_id", client.ID).Info("Client connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		h.removeLocked(client)
		h.logger.WithField("client_id", client.ID).Info("Client disconnected")
	}
}

func (h *Hub) sendToAll(message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			h.logger.WithField("client_id", client.ID).Warn("Dropping slow client")
			h.removeLocked(client)
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

func (h *Hub) shutdown() {
	close(h.done)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		h.removeLocked(client)
	}
}
