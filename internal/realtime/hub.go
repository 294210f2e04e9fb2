package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
)

// Hub управляет websocket-подключениями дашбордов и рассылкой событий
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	logger *logrus.Logger
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run запускает основной цикл хаба; завершается по отмене контекста
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("Realtime hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.WithField("client_id", client.id).Infof("Dashboard client connected. Total clients: %d", n)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.WithField("client_id", client.id).Infof("Dashboard client disconnected. Total clients: %d", n)

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Медленный клиент: отбрасываем соединение, чтобы не копить очередь
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast сериализует событие и рассылает его всем подключенным клиентам
func (h *Hub) Broadcast(event alert.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal realtime event")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("Realtime broadcast queue is full, dropping event")
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
