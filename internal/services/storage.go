package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"careerlens/resume-analyzer/internal/models"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, string, models.DocumentFormat, error)
	ReadFile(filePath string) ([]byte, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile writes the upload to disk under a unique name and returns the
// stored filename, its path, and the format inferred from the extension.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, models.DocumentFormat, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	var format models.DocumentFormat
	switch ext {
	case ".pdf":
		format = models.FormatPDF
	case ".docx":
		format = models.FormatDOCX
	default:
		return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, format, nil
}

// ReadFile loads the stored upload back into memory. The same payload
// may be re-read for later re-extraction in the same session.
func (s *storageService) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored file: %w", err)
	}
	return data, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
