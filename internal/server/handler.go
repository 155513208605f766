package server

import (
	"net/http"

	"github.com/edaniels/golog"
	"github.com/gorilla/websocket"

	"padview/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local use
	},
}

func handleWebSocket(h *hub.Hub, b *hub.Broadcaster, inbound chan<- []byte, logger golog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Errorw("websocket upgrade failed", "error", err)
			return
		}

		client := hub.NewClient(h, conn, inbound, logger)
		h.Register(client)

		// Send current state to the new client
		b.SendInitialState(client)

		go client.WritePump()
		go client.ReadPump()
	}
}
