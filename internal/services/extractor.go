package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"careerlens/resume-analyzer/internal/models"
)

type ExtractorService interface {
	ExtractText(data []byte, format models.DocumentFormat) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText converts an uploaded document into a single plain-text
// string. The byte slice is owned by the caller and never consumed, so
// extracting the same upload twice yields identical text.
func (e *extractorService) ExtractText(data []byte, format models.DocumentFormat) (string, error) {
	var text string
	var err error

	switch format {
	case models.FormatPDF:
		text, err = extractPDFText(data)
	case models.FormatDOCX:
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		// Covers image-only/scanned PDFs with no text layer.
		return "", ErrEmptyDocument
	}

	return text, nil
}

// extractPDFText concatenates the plain text of every page in document
// order. Page boundaries are not marked.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

// wordDocument mirrors the subset of word/document.xml we read. The
// encoding/xml matcher ignores the w: namespace prefixes.
type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Text string `xml:"t"`
}

// extractDocxText joins paragraph texts with a single newline, in
// document order.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	var parsed wordDocument
	if err := xml.Unmarshal([]byte(doc.Editable().GetContent()), &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var paragraphs []string
	for _, para := range parsed.Body.Paragraphs {
		var textBuilder strings.Builder
		for _, run := range para.Runs {
			textBuilder.WriteString(run.Text)
		}
		paragraphs = append(paragraphs, textBuilder.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}
