package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/gofiber/fiber/v2"
)

const reportFolder = "kids_learning_reports"

var errNoRenderer = errors.New("pdf renderer is not configured")

type ArchiveResponse struct {
	URL string `json:"url"`
}

func (h *Handler) GetResultsBySubject(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	return respond(c, services.GetTestResultsBySubject(h.DB, childID), fiber.StatusOK, fiber.StatusInternalServerError)
}

// GetProgressReport renders the child's report as PDF, or as HTML with ?format=html.
func (h *Handler) GetProgressReport(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}

	page, res := h.reportHTML(childID)
	if !res.OK() {
		return respond(c, res, fiber.StatusOK, fiber.StatusNotFound)
	}
	if c.Query("format") == "html" {
		c.Type("html", "utf-8")
		return c.SendString(page)
	}

	pdf, err := h.renderPDF(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Failed to generate progress report", err))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="progress-%d.pdf"`, childID))
	return c.Send(pdf)
}

// ArchiveProgressReport renders the PDF and stores it with the uploader.
func (h *Handler) ArchiveProgressReport(c *fiber.Ctx) error {
	childID, ok := paramID(c, "childId")
	if !ok {
		return invalidID(c, "child ID")
	}
	if h.Uploader == nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Upload service is not configured", nil))
	}

	page, res := h.reportHTML(childID)
	if !res.OK() {
		return respond(c, res, fiber.StatusOK, fiber.StatusNotFound)
	}
	pdf, err := h.renderPDF(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Failed to generate progress report", err))
	}

	url, err := h.Uploader.Upload(c.UserContext(), bytes.NewReader(pdf), reportFolder)
	if err != nil {
		log.Printf("🔥 Failed to archive report for child %d: %v", childID, err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Failed to archive progress report", err))
	}
	return c.Status(fiber.StatusCreated).
		JSON(models.Success("Progress report archived", ArchiveResponse{URL: url}))
}

func (h *Handler) reportHTML(childID uint) (string, models.Response[*services.ProgressReport]) {
	res := services.BuildProgressReport(h.DB, childID)
	if !res.OK() {
		return "", res
	}
	page, err := services.RenderReportHTML(res.Data)
	if err != nil {
		return "", models.Failure[*services.ProgressReport]("Failed to render progress report", err)
	}
	return page, res
}

func (h *Handler) renderPDF(ctx context.Context, page string) ([]byte, error) {
	if h.Reports == nil {
		return nil, errNoRenderer
	}
	return h.Reports.RenderPDF(ctx, page)
}
