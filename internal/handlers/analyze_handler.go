package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerlens/resume-analyzer/internal/models"
	"careerlens/resume-analyzer/internal/repositories"
	"careerlens/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	docRepo  repositories.DocumentRepository
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(
	docRepo repositories.DocumentRepository,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		docRepo:  docRepo,
		analyzer: analyzer,
	}
}

// HandleListTasks handles GET /tasks.
func (h *AnalyzeHandler) HandleListTasks(c *fiber.Ctx) error {
	defs := services.AllTasks()

	tasks := make([]models.TaskInfo, 0, len(defs))
	for _, def := range defs {
		tasks = append(tasks, models.TaskInfo{
			ID:             string(def.ID),
			Label:          def.Label,
			RequiredParams: def.RequiredParams,
			OptionalParams: def.OptionalParams,
			HasScore:       def.HasScore,
			HasTrend:       def.HasTrend,
			Downloadable:   def.Downloadable,
		})
	}

	return c.JSON(fiber.Map{"tasks": tasks})
}

// HandleAnalyze handles POST /analyze. The whole pipeline runs
// synchronously on this request: one extraction at most, one prompt
// render, one completion call, one parse.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	if req.Task == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "task is required",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	task, ok := services.TaskByID(req.Task)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown task: " + req.Task,
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	analysis, err := h.analyzer.Analyze(c.Context(), services.AnalyzeInput{
		Document:       doc,
		Task:           task,
		ResumeText:     req.ResumeText,
		TargetJob:      req.TargetJob,
		JobDescription: req.JobDescription,
		Notes:          req.Notes,
	})
	if err != nil {
		return analysisErrorResponse(c, analysis, err)
	}

	return c.JSON(analysisResponse(analysis))
}

// analysisErrorResponse maps pipeline failures onto HTTP statuses. A
// completion failure still carries the recorded analysis row so the
// client can show what was stored.
func analysisErrorResponse(c *fiber.Ctx, analysis *models.Analysis, err error) error {
	var missingParam *services.MissingParameterError
	if errors.As(err, &missingParam) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingParam.Error(),
		})
	}

	if errors.Is(err, services.ErrUnsupportedFormat) ||
		errors.Is(err, services.ErrEmptyDocument) ||
		errors.Is(err, services.ErrCorruptDocument) {
		return extractionErrorResponse(c, err)
	}

	var completionErr *services.CompletionError
	if errors.As(err, &completionErr) {
		status := fiber.StatusBadGateway
		if completionErr.Kind == services.CompletionErrorNetwork {
			status = fiber.StatusGatewayTimeout
		}

		resp := fiber.Map{"error": completionErr.UserMessage()}
		if analysis != nil {
			resp["analysis"] = analysisResponse(analysis)
		}
		return c.Status(status).JSON(resp)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func analysisResponse(analysis *models.Analysis) models.AnalyzeResponse {
	return models.AnalyzeResponse{
		ID:           analysis.ID.String(),
		DocumentID:   analysis.DocumentID.String(),
		Task:         analysis.Task,
		Status:       string(analysis.Status),
		ResponseText: analysis.ResponseText,
		Score:        analysis.Score,
		Trend:        analysis.TrendPoints(),
		ErrorMessage: analysis.ErrorMessage,
	}
}
