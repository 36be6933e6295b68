package handlers

import (
	"log"
	"strconv"

	"github.com/anjiri1684/kids_learning/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ServeActivity subscribes the socket to its parent's activity stream. Clients only
// listen; anything they send is read and discarded until the connection drops.
func (h *Handler) ServeActivity(c *websocketcontrib.Conn) {
	parentID, err := strconv.ParseUint(c.Params("parentId"), 10, 64)
	if err != nil || parentID == 0 || h.Hub == nil {
		_ = c.WriteJSON(fiber.Map{"status": "error", "message": "Invalid parent ID"})
		c.Close()
		return
	}

	client := &websocket.Client{ParentID: uint(parentID), Conn: c}
	h.Hub.Register(client)
	defer func() {
		h.Hub.Unregister(client)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("WebSocket closed for parent %d", parentID)
			} else {
				log.Printf("WebSocket read error for parent %d: %v", parentID, err)
			}
			return
		}
	}
}
