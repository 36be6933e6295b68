package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/gofiber/fiber/v2"
)

func ChildRoutes(app *fiber.App, h *handlers.Handler) {
	child := app.Group("/child")
	child.Post("", h.CreateChild)
	child.Put("", h.UpdateChild)
	child.Get("/admin", h.GetChildrenForAdmin)
	child.Get("/get/:childId", h.GetChildName)
	child.Get("/child/:childId", h.GetChild)
	child.Get("/:parentId", h.GetChildrenByParent)
	child.Delete("/:childId", h.DeleteChild)
}
