package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a connection to the hub. sessionId may be empty when the
// client is not a scanner page.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, sessionId string) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		UserID:    userID,
		SessionId: sessionId,
		Send:      make(chan []byte, 256),
		done:      make(chan struct{}),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
