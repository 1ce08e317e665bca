package live

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"pantry/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "live").Logger()

const sourceTimeout = 5 * time.Second

// SourceFunc fetches the full shopping list, newest first.
type SourceFunc func(ctx context.Context) ([]models.GroceryItem, error)

// Hub maintains the set of live-feed subscribers. Whenever the shopping list
// changes it re-queries the source and pushes a complete replacement snapshot
// to every subscriber; there is no incremental patching. Snapshot versions
// are monotonic so a consumer can discard anything that arrives out of order.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	source  SourceFunc
	version atomic.Uint64
	refresh chan struct{}
}

// NewHub creates a hub backed by the given source.
func NewHub(source SourceFunc) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		source:  source,
		refresh: make(chan struct{}, 1),
	}
}

// Run drains refresh signals until the context is cancelled. A failed
// re-query is only logged; subscribers keep their last snapshot.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.refresh:
			h.broadcast(ctx)
		}
	}
}

// Invalidate signals that the shopping list changed. Coalesces bursts: a
// refresh already pending covers this change too.
func (h *Hub) Invalidate() {
	select {
	case h.refresh <- struct{}{}:
	default:
	}
}

func (h *Hub) broadcast(ctx context.Context) {
	items, ok := h.fetch(ctx)
	if !ok {
		return
	}
	version := h.version.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.deliver(items, version)
	}
}

// sendInitial pushes the current list to a single, newly connected subscriber.
func (h *Hub) sendInitial(ctx context.Context, c *Client) {
	items, ok := h.fetch(ctx)
	if !ok {
		return
	}
	version := h.version.Add(1)

	// Deliver only while the client is still registered; the send channel is
	// closed on unregister.
	h.mu.RLock()
	if _, registered := h.clients[c]; registered {
		c.deliver(items, version)
	}
	h.mu.RUnlock()
}

func (h *Hub) fetch(ctx context.Context) ([]models.GroceryItem, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	items, err := h.source(fetchCtx)
	if err != nil {
		logger.Error().Err(err).Msg("refresh shopping list")
		return nil, false
	}
	return items, true
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Info().Str("client", c.id).Int("subscribers", h.count()).Msg("subscribed")
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	logger.Info().Str("client", c.id).Int("subscribers", h.count()).Msg("unsubscribed")
}

func (h *Hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
