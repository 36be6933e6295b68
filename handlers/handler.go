package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/notifications"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/anjiri1684/kids_learning/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler carries the dependencies shared by every route. Hub, Uploader, Mailer and
// Reports are optional; the routes that need them degrade when they are nil.
type Handler struct {
	DB           *gorm.DB
	Hub          *websocket.Hub
	Uploader     services.Uploader
	Mailer       notifications.Mailer
	Reports      services.PDFRenderer
	JWTSecret    string
	CookieSecure bool
}

// respond writes an envelope with okCode when it succeeded and failCode otherwise.
func respond[T any](c *fiber.Ctx, res models.Response[T], okCode, failCode int) error {
	if res.OK() {
		return c.Status(okCode).JSON(res)
	}
	return c.Status(failCode).JSON(res)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.Failure[any](message, err))
}

// parseBody decodes and validates a JSON body, writing the 400 itself on failure.
func parseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "Cannot parse JSON", err)
	}
	if err := validate.Struct(out); err != nil {
		return false, badRequest(c, "Invalid request body", err)
	}
	return true, nil
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(models.Failure[any]("Invalid "+name, nil))
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (h *Handler) publish(eventType string, childID uint, payload interface{}) {
	if h.Hub == nil {
		return
	}
	h.Hub.Publish(websocket.Event{Type: eventType, ChildID: childID, Payload: payload})
}

// ErrorHandler answers errors that escape the handlers, such as unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(fiber.Map{
		"status":  models.StatusError,
		"code":    code,
		"message": err.Error(),
	})
}
