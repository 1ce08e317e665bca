package mq

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "mq").Logger()

// Index describes a single change to a record-store entity.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

// Listener receives every emitted change event.
type Listener func(Index)

var (
	mu        sync.RWMutex
	listeners []Listener
)

// Subscribe registers a listener. Listeners must not block; the live feed
// uses this to learn that the shopping list changed.
func Subscribe(fn Listener) {
	mu.Lock()
	listeners = append(listeners, fn)
	mu.Unlock()
}

// Emit fans the event out to every listener.
func Emit(eventName string, content Index) {
	logger.Debug().
		Str("event", eventName).
		Str("entity", content.EntityType).
		Str("method", content.Method).
		Str("id", content.EntityId).
		Msg("emit")

	mu.RLock()
	defer mu.RUnlock()
	for _, fn := range listeners {
		fn(content)
	}
}
