package handlers

import (
	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/gofiber/fiber/v2"
)

type ModuleBody struct {
	Word     string  `json:"word" validate:"required"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

type ExistingModuleBody struct {
	ModuleID uint    `json:"moduleId" validate:"required"`
	Word     string  `json:"word" validate:"required"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

type CreateLessonRequest struct {
	LessonTitle string            `json:"lessonTitle" validate:"required"`
	LessonType  models.LessonType `json:"lessonType" validate:"required,oneof=Word Photo Video"`
	Subject     models.Subject    `json:"subject" validate:"required,oneof=Math English Science Mongolian Art"`
	Modules     []ModuleBody      `json:"modules" validate:"dive"`
}

// EditLessonRequest leaves modules alone when existingModules is absent; an empty list removes them.
type EditLessonRequest struct {
	LessonTitle     *string              `json:"lessonTitle,omitempty"`
	LessonType      *models.LessonType   `json:"lessonType,omitempty" validate:"omitempty,oneof=Word Photo Video"`
	Subject         *models.Subject      `json:"subject,omitempty" validate:"omitempty,oneof=Math English Science Mongolian Art"`
	ExistingModules []ExistingModuleBody `json:"existingModules" validate:"dive"`
	NewModules      []ModuleBody         `json:"newModules" validate:"dive"`
}

func (h *Handler) GetLessons(c *fiber.Ctx) error {
	return respond(c, services.GetLessons(h.DB), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) GetLessonsBySubject(c *fiber.Ctx) error {
	subject := models.Subject(c.Params("subject"))
	if !subject.Valid() {
		return badRequest(c, "Unknown subject", nil)
	}
	return respond(c, services.GetLessonsBySubject(h.DB, subject), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) CreateLesson(c *fiber.Ctx) error {
	var req CreateLessonRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	modules := make([]services.ModuleInput, 0, len(req.Modules))
	for _, m := range req.Modules {
		modules = append(modules, services.ModuleInput{Word: m.Word, PhotoURL: m.PhotoURL})
	}
	res := services.CreateLesson(h.DB, services.NewLesson{
		LessonTitle: req.LessonTitle,
		LessonType:  req.LessonType,
		Subject:     req.Subject,
		Modules:     modules,
	})
	return respond(c, res, fiber.StatusCreated, fiber.StatusInternalServerError)
}

func (h *Handler) EditLesson(c *fiber.Ctx) error {
	lessonID, ok := paramID(c, "lessonId")
	if !ok {
		return invalidID(c, "lesson ID")
	}
	var req EditLessonRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	edit := services.LessonEdit{
		LessonTitle: req.LessonTitle,
		LessonType:  req.LessonType,
		Subject:     req.Subject,
	}
	if req.ExistingModules != nil {
		edit.ExistingModules = make([]models.Module, 0, len(req.ExistingModules))
		for _, m := range req.ExistingModules {
			edit.ExistingModules = append(edit.ExistingModules, models.Module{
				ModuleID: m.ModuleID,
				LessonID: lessonID,
				Word:     m.Word,
				PhotoURL: m.PhotoURL,
			})
		}
	}
	for _, m := range req.NewModules {
		edit.NewModules = append(edit.NewModules, services.ModuleInput{Word: m.Word, PhotoURL: m.PhotoURL})
	}

	return respond(c, services.EditLesson(h.DB, lessonID, edit), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) DeleteLesson(c *fiber.Ctx) error {
	lessonID, ok := paramID(c, "lessonId")
	if !ok {
		return invalidID(c, "lesson ID")
	}
	return respond(c, services.DeleteLesson(h.DB, lessonID), fiber.StatusOK, fiber.StatusInternalServerError)
}
