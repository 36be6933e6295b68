package handlers

import (
	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/gofiber/fiber/v2"
)

type OptionBody struct {
	OptionID  uint   `json:"optionId"`
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type MultipleChoiceBody struct {
	Options []OptionBody `json:"options" validate:"dive"`
}

type FillInTheBlankBody struct {
	CorrectAnswer string `json:"correctAnswer" validate:"required"`
}

type PhotoQuestionBody struct {
	PhotoURL string `json:"photoUrl" validate:"required"`
}

// QuestionRequest mirrors the stored question tree: one sub-object per question type.
type QuestionRequest struct {
	QuestionID     uint                `json:"questionId"`
	Text           string              `json:"text" validate:"required"`
	QuestionType   models.QuestionType `json:"questionType" validate:"required"`
	MultipleChoice *MultipleChoiceBody `json:"multipleChoice,omitempty"`
	FillInTheBlank *FillInTheBlankBody `json:"fillInTheBlank,omitempty"`
	PhotoQuestion  *PhotoQuestionBody  `json:"photoQuestion,omitempty"`
}

type CreateTestRequest struct {
	Subject  models.Subject   `json:"subject" validate:"required,oneof=Math English Science Mongolian Art"`
	TestType models.TestType  `json:"testType" validate:"required,oneof=Quiz Exam Practice"`
	Answer   string           `json:"answer"`
	Question *QuestionRequest `json:"question,omitempty"`
}

type EditTestRequest struct {
	Subject   *models.Subject   `json:"subject,omitempty" validate:"omitempty,oneof=Math English Science Mongolian Art"`
	TestType  *models.TestType  `json:"testType,omitempty" validate:"omitempty,oneof=Quiz Exam Practice"`
	Answer    *string           `json:"answer,omitempty"`
	Questions []QuestionRequest `json:"questions" validate:"dive"`
}

func (q QuestionRequest) body() services.QuestionBody {
	body := services.QuestionBody{
		QuestionID:   q.QuestionID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
	}
	if q.MultipleChoice != nil {
		body.MultipleChoice = make([]services.OptionInput, 0, len(q.MultipleChoice.Options))
		for _, o := range q.MultipleChoice.Options {
			body.MultipleChoice = append(body.MultipleChoice, services.OptionInput{
				OptionID:  o.OptionID,
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
	}
	if q.FillInTheBlank != nil {
		body.FillInTheBlank = &q.FillInTheBlank.CorrectAnswer
	}
	if q.PhotoQuestion != nil {
		body.PhotoQuestion = &q.PhotoQuestion.PhotoURL
	}
	return body
}

func (h *Handler) GetTests(c *fiber.Ctx) error {
	return respond(c, services.GetTests(h.DB), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) CreateTest(c *fiber.Ctx) error {
	var req CreateTestRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	in := services.NewTest{Subject: req.Subject, TestType: req.TestType, Answer: req.Answer}
	if req.Question != nil {
		body := req.Question.body()
		if err := body.Validate(); err != nil {
			return badRequest(c, "Invalid question", err)
		}
		in.Question = &body
	}
	return respond(c, services.CreateTest(h.DB, in), fiber.StatusCreated, fiber.StatusInternalServerError)
}

func (h *Handler) EditTest(c *fiber.Ctx) error {
	testID, ok := paramID(c, "testId")
	if !ok {
		return invalidID(c, "test ID")
	}
	var req EditTestRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	edit := services.TestEdit{Subject: req.Subject, TestType: req.TestType, Answer: req.Answer}
	for _, q := range req.Questions {
		body := q.body()
		if err := body.Validate(); err != nil {
			return badRequest(c, "Invalid question", err)
		}
		edit.Questions = append(edit.Questions, body)
	}
	return respond(c, services.EditTest(h.DB, testID, edit), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) DeleteTest(c *fiber.Ctx) error {
	testID, ok := paramID(c, "testId")
	if !ok {
		return invalidID(c, "test ID")
	}
	return respond(c, services.DeleteTest(h.DB, testID), fiber.StatusOK, fiber.StatusInternalServerError)
}
