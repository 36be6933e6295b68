package handlers

import (
	"log"

	"github.com/anjiri1684/kids_learning/models"
	"github.com/gofiber/fiber/v2"
)

const defaultUploadFolder = "kids_learning"

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadFile stores the multipart field "file" and answers with its public URL.
func (h *Handler) UploadFile(c *fiber.Ctx) error {
	if h.Uploader == nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Upload service is not configured", nil))
	}

	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded", err)
	}
	file, err := header.Open()
	if err != nil {
		return badRequest(c, "Failed to read uploaded file", err)
	}
	defer file.Close()

	folder := c.FormValue("folder", defaultUploadFolder)
	url, err := h.Uploader.Upload(c.UserContext(), file, folder)
	if err != nil {
		log.Printf("🔥 Upload of %s failed: %v", header.Filename, err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.Failure[any]("Upload failed", err))
	}
	return c.Status(fiber.StatusOK).JSON(models.Success("File uploaded successfully", UploadResponse{URL: url}))
}
