package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/anjiri1684/kids_learning/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func ActivityRoutes(app *fiber.App, h *handlers.Handler) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/activity/:parentId",
		middleware.ProtectedSocket(h.JWTSecret),
		middleware.OwnParent("parentId"),
		websocket.New(h.ServeActivity),
	)
}
