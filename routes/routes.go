package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/gofiber/fiber/v2"
)

// Setup mounts every route group on app.
func Setup(app *fiber.App, h *handlers.Handler) {
	ParentRoutes(app, h)
	ChildRoutes(app, h)
	LessonRoutes(app, h)
	TestRoutes(app, h)
	AnalysisRoutes(app, h)
	UploadRoutes(app, h)
	ActivityRoutes(app, h)
}
