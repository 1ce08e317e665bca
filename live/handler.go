package live

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed upgrades the connection and subscribes it to the shopping-list feed.
// The subscriber immediately receives the current list, then a full
// replacement snapshot on every change.
func Feed(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error().Err(err).Msg("websocket upgrade")
			return
		}

		c := newClient(hub, conn)
		hub.register(c)

		go c.writePump()
		go c.readPump()

		hub.sendInitial(r.Context(), c)
	}
}
