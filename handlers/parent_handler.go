package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/anjiri1684/kids_learning/middleware"
	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/notifications"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/gofiber/fiber/v2"
)

const sessionCookieTTL = 30 * 24 * time.Hour

type CreateParentRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=6"`
}

type UpdateParentRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Parent   *models.Parent `json:"parent"`
	ParentID uint           `json:"parentId"`
	Children []uint         `json:"children"`
	Token    string         `json:"token"`
}

func (h *Handler) CreateParent(c *fiber.Ctx) error {
	var req CreateParentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res := services.CreateParent(h.DB, services.NewParent{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if res.OK() && h.Mailer != nil {
		go notifications.SendWelcome(h.Mailer, req.Name, req.Email)
	}
	return respond(c, res, fiber.StatusCreated, fiber.StatusBadRequest)
}

func (h *Handler) GetParent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "parent ID")
	}
	return respond(c, services.GetParentByID(h.DB, id), fiber.StatusOK, fiber.StatusNotFound)
}

// GetCurrentParent serves the parent named by the session token.
func (h *Handler) GetCurrentParent(c *fiber.Ctx) error {
	id, err := middleware.ParentID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Failure[any]("Unauthorized", err))
	}
	return respond(c, services.GetParentByID(h.DB, id), fiber.StatusOK, fiber.StatusNotFound)
}

func (h *Handler) UpdateParent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "parent ID")
	}
	var req UpdateParentRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res := services.UpdateParent(h.DB, id, services.ParentUpdate{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	return respond(c, res, fiber.StatusOK, fiber.StatusBadRequest)
}

func (h *Handler) DeleteParent(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "parent ID")
	}
	return respond(c, services.DeleteParent(h.DB, id), fiber.StatusOK, fiber.StatusNotFound)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	res := services.LoginParent(h.DB, req.Email, req.Password)
	if !res.OK() {
		return c.Status(fiber.StatusUnauthorized).JSON(res)
	}

	parent := res.Data.Parent
	token, err := middleware.IssueToken(h.JWTSecret, parent.ParentID, res.Data.Children)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Failed to generate token", err))
	}

	children, _ := json.Marshal(res.Data.Children)
	expires := time.Now().Add(sessionCookieTTL)
	c.Cookie(&fiber.Cookie{
		Name:     "parentId",
		Value:    strconv.FormatUint(uint64(parent.ParentID), 10),
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "children",
		Value:    string(children),
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
	})

	return c.Status(fiber.StatusOK).JSON(models.Success("Login successful", LoginResponse{
		Parent:   parent,
		ParentID: parent.ParentID,
		Children: res.Data.Children,
		Token:    token,
	}))
}
