package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pantry/grocery"
	"pantry/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

// Snapshot is one full replacement of a subscriber's view: the complete item
// list plus the grouped rendering of the active store tab. Never a diff.
type Snapshot struct {
	Type    string                  `json:"type"`
	Version uint64                  `json:"version"`
	Store   string                  `json:"store"`
	Groups  []grocery.CategoryGroup `json:"groups"`
	Items   []models.GroceryItem    `json:"items"`
}

// controlMessage is what a subscriber sends to change its view: switching the
// active store tab or toggling a category section.
type controlMessage struct {
	Action   string `json:"action"`
	Store    string `json:"store,omitempty"`
	Category string `json:"category,omitempty"`
}

// Client is one live-feed subscriber. The active tab and expansion set are
// view state owned by the subscriber; they survive every data refresh.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu       sync.Mutex
	store    string
	expanded *grocery.ExpansionSet
	items    []models.GroceryItem
	version  uint64
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:       uuid.NewString(),
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		store:    models.Stores[0],
		expanded: grocery.NewExpansionSet(),
	}
}

// deliver replaces the client's item list with a fresh snapshot and queues
// the rendered view. Stale versions are dropped.
func (c *Client) deliver(items []models.GroceryItem, version uint64) {
	c.mu.Lock()
	if version < c.version {
		c.mu.Unlock()
		return
	}
	c.items = items
	c.version = version
	data := c.renderLocked()
	c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		// Slow consumer: drop this snapshot, the next one fully replaces it.
	}
}

// rerender re-sends the current snapshot after a view-state change.
func (c *Client) rerender() {
	c.mu.Lock()
	data := c.renderLocked()
	c.mu.Unlock()

	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) renderLocked() []byte {
	items := c.items
	if items == nil {
		items = []models.GroceryItem{}
	}
	snap := Snapshot{
		Type:    "snapshot",
		Version: c.version,
		Store:   c.store,
		Groups:  grocery.GroupByCategory(grocery.FilterByStore(items, c.store), c.expanded),
		Items:   items,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		logger.Error().Err(err).Str("client", c.id).Msg("marshal snapshot")
		return []byte(`{"type":"error"}`)
	}
	return data
}

func (c *Client) handleControl(raw []byte) {
	var msg controlMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Debug().Err(err).Str("client", c.id).Msg("bad control message")
		return
	}

	switch msg.Action {
	case "tab":
		if !models.ValidStore(msg.Store) {
			return
		}
		c.mu.Lock()
		c.store = msg.Store
		c.mu.Unlock()
		c.rerender()
	case "toggle":
		c.mu.Lock()
		c.expanded.Toggle(msg.Category)
		c.mu.Unlock()
		c.rerender()
	}
}

// readPump consumes control messages until the connection drops, then
// unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.handleControl(raw)
	}
}

// writePump drains the send channel and pings to detect dead peers.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
