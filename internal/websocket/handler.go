package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// UpgradeMiddleware rejects plain HTTP requests on the websocket route.
func UpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// ServeWs upgrades the connection and attaches it to the hub. The user id is
// expected in locals, set by the JWT middleware running before the upgrade.
func ServeWs(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userIDStr, ok := conn.Locals("user_id").(string)
		if !ok {
			conn.Close()
			return
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			conn.Close()
			return
		}

		client := &Client{
			hub:    hub,
			conn:   conn,
			send:   make(chan []byte, 64),
			userID: userID,
		}
		hub.register <- client

		go client.writePump()
		client.readPump()
	})
}
