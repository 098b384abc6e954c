package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerlens/resume-analyzer/internal/models"
	"careerlens/resume-analyzer/internal/repositories"
	"careerlens/resume-analyzer/internal/services"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	return c.JSON(analysisResponse(analysis))
}

// HandleListDocumentResults handles GET /documents/:id/analyses.
func (h *ResultHandler) HandleListDocumentResults(c *fiber.Ctx) error {
	idParam := c.Params("id")
	docID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	analyses, err := h.analysisRepo.FindByDocumentID(docID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load analyses",
		})
	}

	responses := make([]models.AnalyzeResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, analysisResponse(&analyses[i]))
	}

	return c.JSON(fiber.Map{"analyses": responses})
}

// HandleDownloadResult handles GET /result/:id/download. The raw
// completion text is served verbatim as a plain-text attachment; used
// for the enhanced resume and cover letter artifacts.
func (h *ResultHandler) HandleDownloadResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	task, ok := services.TaskByID(analysis.Task)
	if !ok || !task.Downloadable {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "This analysis does not produce a downloadable artifact",
		})
	}

	if analysis.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This analysis did not complete successfully",
		})
	}

	filename := fmt.Sprintf("%s_%s.txt", analysis.Task, analysis.ID.String())
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.SendString(analysis.ResponseText)
}
