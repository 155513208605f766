package hub

import (
	"github.com/edaniels/golog"
	"github.com/gorilla/websocket"
)

// Client represents a connected WebSocket client. Each client is both a
// viewer (drains the send channel) and a potential host bridge (its inbound
// frames carry gamepad events that feed the device core).
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	inbound chan<- []byte
	logger  golog.Logger
}

// NewClient creates a new Client attached to the hub. Frames read from the
// connection are forwarded, unparsed, onto the inbound channel; the codec at
// the bridge boundary decides whether they are well-formed.
func NewClient(hub *Hub, conn *websocket.Conn, inbound chan<- []byte, logger golog.Logger) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		inbound: inbound,
		logger:  logger,
	}
}

// WritePump sends messages from the send channel to the WebSocket connection.
func (c *Client) WritePump() {
	defer func() {
		c.conn.Close()
	}()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump forwards host event frames into the inbound channel until the
// connection drops. Frames are dropped when the bridge is saturated; the
// per-tick re-poll recovers any lost readings.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		select {
		case c.inbound <- message:
		default:
			c.logger.Debugw("inbound queue full, dropping host frame")
		}
	}
}
