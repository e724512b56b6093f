package mapview

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans overlay-change notifications out to the map views watching a
// view session, so a comment or ride session added through the REST
// surface shows up on open maps. With redis configured, publishes are
// mirrored across instances.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	ViewID string
	Send   chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}
	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(viewID string) *Client {
	client := &Client{
		ViewID: viewID,
		Send:   make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[viewID] == nil {
		h.clients[viewID] = map[*Client]struct{}{}
	}
	h.clients[viewID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if viewClients, ok := h.clients[client.ViewID]; ok {
		delete(viewClients, client)
		if len(viewClients) == 0 {
			delete(h.clients, client.ViewID)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(viewID string, payload []byte) {
	// sends happen under the read lock: Unregister closes Send under the
	// write lock, so a send can never hit a closed channel
	h.mu.RLock()
	for client := range h.clients[viewID] {
		select {
		case client.Send <- payload:
		default:
		}
	}
	h.mu.RUnlock()

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(viewID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "mapview:*:events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		viewID := viewIDFromChannel(msg.Channel)
		h.mu.RLock()
		for client := range h.clients[viewID] {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
		h.mu.RUnlock()
	}
}

func redisChannel(viewID string) string {
	return "mapview:" + viewID + ":events"
}

func viewIDFromChannel(ch string) string {
	// mapview:{view}:events
	const prefix = "mapview:"
	const suffix = ":events"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
