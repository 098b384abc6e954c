package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerlens/resume-analyzer/internal/models"
	"careerlens/resume-analyzer/internal/repositories"
)

// lowVarianceTemperature is used for the tasks whose responses feed the
// signal parser.
const lowVarianceTemperature float32 = 0.2

type AnalyzeInput struct {
	Document       *models.Document
	Task           TaskDefinition
	ResumeText     string
	TargetJob      string
	JobDescription string
	Notes          string
}

type AnalyzerService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*models.Analysis, error)
}

type analyzerService struct {
	analysisRepo   repositories.AnalysisRepository
	completion     CompletionClient
	extractor      ExtractorService
	storage        StorageService
	requestTimeout time.Duration
}

func NewAnalyzerService(
	analysisRepo repositories.AnalysisRepository,
	completion CompletionClient,
	extractor ExtractorService,
	storage StorageService,
	requestTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		analysisRepo:   analysisRepo,
		completion:     completion,
		extractor:      extractor,
		storage:        storage,
		requestTimeout: requestTimeout,
	}
}

// Analyze runs one synchronous pipeline pass: resolve the resume text,
// render the task prompt, make a single completion call, parse signals,
// and persist the outcome as a fresh analysis row. Earlier rows for the
// same document and task are never touched, so a failure here cannot
// corrupt a previously successful result.
func (a *analyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*models.Analysis, error) {
	resumeText, err := a.resolveResumeText(input)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		ParamResumeText: resumeText,
		ParamNotes:      input.Notes,
	}
	if input.TargetJob != "" {
		params[ParamTargetJob] = input.TargetJob
	}
	if input.JobDescription != "" {
		params[ParamJobDescription] = input.JobDescription
	}

	prompt, err := RenderPrompt(input.Task, params)
	if err != nil {
		return nil, err
	}

	var opts CompletionOptions
	if input.Task.LowVariance {
		temperature := lowVarianceTemperature
		opts.Temperature = &temperature
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	analysis := &models.Analysis{
		ID:         uuid.New(),
		DocumentID: input.Document.ID,
		Task:       string(input.Task.ID),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	text, err := a.completion.GenerateText(ctx, prompt, opts)
	if err != nil {
		analysis.Status = models.StatusFailed
		analysis.ErrorMessage = completionErrorMessage(err)

		if createErr := a.analysisRepo.Create(analysis); createErr != nil {
			log.Printf("⚠️  Failed to record failed analysis %s: %v\n", analysis.ID, createErr)
		}
		return analysis, err
	}

	analysis.Status = models.StatusCompleted
	analysis.ResponseText = text

	if input.Task.HasScore {
		if score, ok := ParseScore(text); ok {
			analysis.Score = &score
		}
	}
	if input.Task.HasTrend {
		if series := ParseTrendSeries(text); len(series) > 0 {
			if trendJSON, err := json.Marshal(series); err == nil {
				analysis.TrendJSON = string(trendJSON)
			}
		}
	}

	if err := a.analysisRepo.Create(analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

// resolveResumeText prefers the browser-edited text; an empty submission
// falls back to re-extracting the stored upload.
func (a *analyzerService) resolveResumeText(input AnalyzeInput) (string, error) {
	if strings.TrimSpace(input.ResumeText) != "" {
		return input.ResumeText, nil
	}

	data, err := a.storage.ReadFile(input.Document.FilePath)
	if err != nil {
		return "", err
	}

	return a.extractor.ExtractText(data, input.Document.Format)
}

func completionErrorMessage(err error) string {
	var completionErr *CompletionError
	if errors.As(err, &completionErr) {
		return completionErr.UserMessage()
	}
	return err.Error()
}
