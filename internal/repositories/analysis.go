package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerlens/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindByDocumentID(documentID uuid.UUID) ([]models.Analysis, error)
	FindLatestByDocumentAndTask(documentID uuid.UUID, task string) (*models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

// FindByDocumentID returns every analysis row for a document, newest
// first. Rows are append-only, so the history of each task is preserved.
func (r *analysisRepository) FindByDocumentID(documentID uuid.UUID) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("document_id = ?", documentID).
		Order("created_at DESC").
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}

	return analyses, nil
}

func (r *analysisRepository) FindLatestByDocumentAndTask(documentID uuid.UUID, task string) (*models.Analysis, error) {
	var analysis models.Analysis
	err := r.db.
		Where("document_id = ? AND task = ?", documentID, task).
		Order("created_at DESC").
		First(&analysis).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}
