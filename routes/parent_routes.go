package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/anjiri1684/kids_learning/middleware"
	"github.com/gofiber/fiber/v2"
)

func ParentRoutes(app *fiber.App, h *handlers.Handler) {
	app.Post("/login", middleware.LoginRateLimiter(), h.Login)

	parent := app.Group("/parent")
	parent.Post("", h.CreateParent)
	parent.Get("/me", middleware.Protected(h.JWTSecret), h.GetCurrentParent)
	parent.Get("/:id", h.GetParent)
	parent.Put("/:id", h.UpdateParent)
	parent.Delete("/:id", h.DeleteParent)
}
