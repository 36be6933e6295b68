package routes

import (
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/gofiber/fiber/v2"
)

func LessonRoutes(app *fiber.App, h *handlers.Handler) {
	lesson := app.Group("/lesson")
	lesson.Get("", h.GetLessons)
	lesson.Post("", h.CreateLesson)
	lesson.Get("/:subject", h.GetLessonsBySubject)
	lesson.Put("/:lessonId", h.EditLesson)
	lesson.Delete("/:lessonId", h.DeleteLesson)

	completion := app.Group("/mlc")
	completion.Post("/create", h.CreateCompletion)
	completion.Get("/child/:childId", h.GetCompletedLessons)
	completion.Get("/progress/:childId/:subject", h.GetLessonProgress)
}

func TestRoutes(app *fiber.App, h *handlers.Handler) {
	test := app.Group("/test")
	test.Get("", h.GetTests)
	test.Post("", h.CreateTest)
	test.Put("/:testId", h.EditTest)
	test.Delete("/:testId", h.DeleteTest)

	result := app.Group("/result")
	result.Post("", h.SaveTestResult)
	result.Get("/:childId", h.GetTestResults)
}

func AnalysisRoutes(app *fiber.App, h *handlers.Handler) {
	analysis := app.Group("/analysis")
	analysis.Post("/results/subject/:childId", h.GetResultsBySubject)
	analysis.Get("/results/subject/:childId", h.GetResultsBySubject)
	analysis.Get("/report/:childId", h.GetProgressReport)
	analysis.Post("/report/:childId/archive", h.ArchiveProgressReport)
}
