package handlers

import (
	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/anjiri1684/kids_learning/websocket"
	"github.com/gofiber/fiber/v2"
)

type CompletionRequest struct {
	ChildID  uint `json:"childId" validate:"required"`
	LessonID uint `json:"lessonId" validate:"required"`
}

func (h *Handler) CreateCompletion(c *fiber.Ctx) error {
	var req CompletionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res := services.CreateCompletion(h.DB, req.ChildID, req.LessonID)
	if res.OK() {
		h.publish(websocket.EventLessonCompleted, req.ChildID, res.Data)
	}
	return respond(c, res, fiber.StatusOK, fiber.StatusBadRequest)
}

func (h *Handler) GetCompletedLessons(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.GetCompletedLessonsByChild(h.DB, childID), fiber.StatusOK, fiber.StatusNotFound)
}

func (h *Handler) GetLessonProgress(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	subject := models.Subject(c.Params("subject"))
	if !subject.Valid() {
		return badRequest(c, "Unknown subject", nil)
	}
	return respond(c, services.GetLessonsBySubjectAndChild(h.DB, childID, subject), fiber.StatusOK, fiber.StatusInternalServerError)
}
