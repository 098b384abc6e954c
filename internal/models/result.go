package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Format       string `json:"format"`
	ResumeText   string `json:"resume_text"`
}

type AnalyzeRequest struct {
	DocumentID     string `json:"document_id" validate:"required,uuid"`
	Task           string `json:"task" validate:"required"`
	ResumeText     string `json:"resume_text,omitempty"`
	TargetJob      string `json:"target_job,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type AnalyzeResponse struct {
	ID           string       `json:"id"`
	DocumentID   string       `json:"document_id"`
	Task         string       `json:"task"`
	Status       string       `json:"status"`
	ResponseText string       `json:"response_text,omitempty"`
	Score        *int         `json:"score,omitempty"`
	Trend        []TrendPoint `json:"trend,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

type TaskInfo struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	RequiredParams []string `json:"required_params"`
	OptionalParams []string `json:"optional_params,omitempty"`
	HasScore       bool     `json:"has_score"`
	HasTrend       bool     `json:"has_trend"`
	Downloadable   bool     `json:"downloadable"`
}
