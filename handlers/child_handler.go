package handlers

import (
	"github.com/anjiri1684/kids_learning/services"
	"github.com/gofiber/fiber/v2"
)

type ChildBody struct {
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

type CreateChildRequest struct {
	ParentID uint      `json:"parentId" validate:"required"`
	Child    ChildBody `json:"child"`
}

type UpdateChildRequest struct {
	ChildID     uint   `json:"childId" validate:"required"`
	ParentID    uint   `json:"parentId"`
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

func (h *Handler) CreateChild(c *fiber.Ctx) error {
	var req CreateChildRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	dob, ok := parseDate(req.Child.DateOfBirth)
	if !ok {
		return badRequest(c, "dateOfBirth must be YYYY-MM-DD", nil)
	}

	res := services.CreateChild(h.DB, req.ParentID, services.ChildInput{Name: req.Child.Name, DateOfBirth: dob})
	return respond(c, res, fiber.StatusCreated, fiber.StatusInternalServerError)
}

func (h *Handler) GetChildrenByParent(c *fiber.Ctx) error {
	parentID, ok := paramID(c, "parentId")
	if !ok {
		return invalidID(c, "parent ID")
	}
	return respond(c, services.GetChildrenByParent(h.DB, parentID), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) GetChildName(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.GetChildNameByID(h.DB, childID), fiber.StatusOK, fiber.StatusNotFound)
}

func (h *Handler) GetChild(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.GetChildByID(h.DB, childID), fiber.StatusOK, fiber.StatusNotFound)
}

// GetChildrenForAdmin lists every child joined with its parent's contact details.
func (h *Handler) GetChildrenForAdmin(c *fiber.Ctx) error {
	return respond(c, services.GetChildrenWithParentDetails(h.DB), fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) UpdateChild(c *fiber.Ctx) error {
	var req UpdateChildRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	dob, ok := parseDate(req.DateOfBirth)
	if !ok {
		return badRequest(c, "dateOfBirth must be YYYY-MM-DD", nil)
	}

	res := services.UpdateChild(h.DB, req.ChildID, req.ParentID, services.ChildInput{Name: req.Name, DateOfBirth: dob})
	return respond(c, res, fiber.StatusOK, fiber.StatusInternalServerError)
}

func (h *Handler) DeleteChild(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.DeleteChild(h.DB, childID), fiber.StatusOK, fiber.StatusInternalServerError)
}
