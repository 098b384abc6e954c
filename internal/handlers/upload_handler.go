package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerlens/resume-analyzer/internal/models"
	"careerlens/resume-analyzer/internal/repositories"
	"careerlens/resume-analyzer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	extractor      services.ExtractorService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	extractor services.ExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload. The resume is stored on disk for
// later re-extraction and its text is returned immediately so the
// browser can show an editable copy.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'resume' as a PDF or DOCX file.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, format, err := h.storageService.SaveFile(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported file type. Please upload a PDF or DOCX file.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// Extract eagerly so upload problems surface before any analysis.
	data, err := h.storageService.ReadFile(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume file: %v", err),
		})
	}

	resumeText, err := h.extractor.ExtractText(data, format)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return extractionErrorResponse(c, err)
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		Format:           format,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume document record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		Format:       string(doc.Format),
		ResumeText:   resumeText,
	})
}

func extractionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type. Please upload a PDF or DOCX file.",
		})
	case errors.Is(err, services.ErrEmptyDocument):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "This document contains no text. It might be an image-based PDF.",
		})
	case errors.Is(err, services.ErrCorruptDocument):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("An error occurred while reading the document: %v", err),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text: %v", err),
		})
	}
}
