package handlers

import (
	"github.com/anjiri1684/kids_learning/services"
	"github.com/anjiri1684/kids_learning/websocket"
	"github.com/gofiber/fiber/v2"
)

type SaveResultRequest struct {
	ChildID        uint `json:"childId" validate:"required"`
	TestID         uint `json:"testId" validate:"required"`
	TotalQuestions int  `json:"totalQuestions" validate:"required,gt=0"`
	CorrectAnswers *int `json:"correctAnswers" validate:"required,gte=0"`
}

func (h *Handler) SaveTestResult(c *fiber.Ctx) error {
	var req SaveResultRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if *req.CorrectAnswers > req.TotalQuestions {
		return badRequest(c, "correctAnswers cannot exceed totalQuestions", nil)
	}

	res := services.SaveTestResult(h.DB, services.NewTestResult{
		ChildID: req.ChildID,
		TestID:  req.TestID,
		Total:   req.TotalQuestions,
		Correct: *req.CorrectAnswers,
	})
	if res.OK() {
		h.publish(websocket.EventTestResult, req.ChildID, res.Data)
	}
	return respond(c, res, fiber.StatusCreated, fiber.StatusInternalServerError)
}

func (h *Handler) GetTestResults(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.GetTestResults(h.DB, childID), fiber.StatusOK, fiber.StatusInternalServerError)
}
