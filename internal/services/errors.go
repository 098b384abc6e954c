package services

import (
	"errors"
	"fmt"
)

// Extraction failures.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyDocument     = errors.New("document contains no extractable text")
	ErrCorruptDocument   = errors.New("document could not be parsed")
)

// MissingParameterError is returned by RenderPrompt when a task-required
// parameter is absent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

// CompletionErrorKind classifies a failed completion call.
type CompletionErrorKind string

const (
	CompletionErrorAuth    CompletionErrorKind = "authentication"
	CompletionErrorNetwork CompletionErrorKind = "network"
	CompletionErrorService CompletionErrorKind = "service"
)

// CompletionError is the only error type the completion client returns.
// No exceptions-style control flow crosses this boundary; callers branch
// on Kind and keep operating.
type CompletionError struct {
	Kind CompletionErrorKind
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion %s error: %v", e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// UserMessage is the human-readable cause shown to the end user.
func (e *CompletionError) UserMessage() string {
	switch e.Kind {
	case CompletionErrorAuth:
		return "The AI service rejected our credentials. Please check the configured API key."
	case CompletionErrorNetwork:
		return "Could not reach the AI service. Please try again."
	default:
		return fmt.Sprintf("The AI service returned an error: %v", e.Err)
	}
}
