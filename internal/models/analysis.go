package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// TrendPoint is one (year, value) pair extracted from a Markdown table
// row in the model's response.
type TrendPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Analysis is one result slot per (document, task). Each task keeps its
// own row; a failed analysis records its error without touching the
// results of other tasks on the same document.
type Analysis struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	Task         string         `gorm:"type:text;not null" json:"task"`
	Status       AnalysisStatus `gorm:"not null;default:'completed'" json:"status"`
	ResponseText string         `gorm:"type:text" json:"response_text,omitempty"`
	Score        *int           `gorm:"type:integer" json:"score,omitempty"`
	TrendJSON    string         `gorm:"type:text" json:"-"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// TrendPoints decodes the stored trend series. A missing or unreadable
// column yields an empty series, never an error.
func (a *Analysis) TrendPoints() []TrendPoint {
	if a.TrendJSON == "" {
		return nil
	}

	var series []TrendPoint
	if err := json.Unmarshal([]byte(a.TrendJSON), &series); err != nil {
		return nil
	}
	return series
}
