package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ai-strategy-agent-be/internal/pkg/logger"
)

// StreamMessage is the envelope pushed to connected clients. Type is one of
// "agent_reply", "section_saved", "conversation_finished" or "export_ready".
type StreamMessage struct {
	Type      string `json:"type"`
	SessionId string `json:"session_id,omitempty"`
	AgentKey  string `json:"agent_key,omitempty"`
	SectionId string `json:"section_id,omitempty"`
	Reply     string `json:"reply,omitempty"`
	ExportURL string `json:"export_url,omitempty"`
}

type clusterEnvelope struct {
	UserID  uuid.UUID     `json:"user_id"`
	Message StreamMessage `json:"message"`
}

// Hub keeps the set of active clients and fans messages out to them. When a
// redis client is provided, messages for users connected to another instance
// are relayed through the cluster_events channel.
type Hub struct {
	clients    map[uuid.UUID][]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	redisClient *redis.Client
	logger      logger.ILogger
}

const clusterChannel = "cluster_events"

func NewHub(redisClient *redis.Client, logger logger.ILogger) *Hub {
	return &Hub{
		clients:     make(map[uuid.UUID][]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		redisClient: redisClient,
		logger:      logger,
	}
}

func (h *Hub) Run() {
	if h.redisClient != nil {
		go h.subscribeCluster()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userID] = append(h.clients[client.userID], client)
			h.mu.Unlock()
			h.logger.Info("WebSocketHub", "client registered", map[string]interface{}{
				"user_id": client.userID.String(),
			})
		case client := <-h.unregister:
			h.mu.Lock()
			conns := h.clients[client.userID]
			for i, c := range conns {
				if c == client {
					h.clients[client.userID] = append(conns[:i], conns[i+1:]...)
					close(c.send)
					break
				}
			}
			if len(h.clients[client.userID]) == 0 {
				delete(h.clients, client.userID)
			}
			h.mu.Unlock()
			h.logger.Info("WebSocketHub", "client unregistered", map[string]interface{}{
				"user_id": client.userID.String(),
			})
		}
	}
}

// SendToUser delivers a message to every local connection of the user, and
// relays it to other instances when the user has no local connection.
func (h *Hub) SendToUser(userID uuid.UUID, msg StreamMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("WebSocketHub", "failed to marshal stream message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	h.mu.RLock()
	conns := h.clients[userID]
	h.mu.RUnlock()

	if len(conns) == 0 {
		h.relay(userID, msg)
		return
	}

	for _, c := range conns {
		select {
		case c.send <- payload:
		default:
			// slow consumer, drop the connection
			h.unregister <- c
		}
	}
}

func (h *Hub) relay(userID uuid.UUID, msg StreamMessage) {
	if h.redisClient == nil {
		return
	}
	envelope, err := json.Marshal(clusterEnvelope{UserID: userID, Message: msg})
	if err != nil {
		return
	}
	if err := h.redisClient.Publish(context.Background(), clusterChannel, envelope).Err(); err != nil {
		h.logger.Warn("WebSocketHub", "failed to relay stream message to cluster", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Hub) subscribeCluster() {
	sub := h.redisClient.Subscribe(context.Background(), clusterChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		var envelope clusterEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			h.logger.Warn("WebSocketHub", "malformed cluster event", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		h.mu.RLock()
		conns := h.clients[envelope.UserID]
		h.mu.RUnlock()
		if len(conns) == 0 {
			continue
		}

		payload, err := json.Marshal(envelope.Message)
		if err != nil {
			continue
		}
		for _, c := range conns {
			select {
			case c.send <- payload:
			default:
			}
		}
	}
}
