package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/upload", h.UploadFile)
}
