package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerlens/resume-analyzer/internal/models"
)

// buildDocx assembles a minimal wordprocessing document in memory: a ZIP
// container holding word/document.xml with one paragraph per entry.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, para := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", para)
	}

	documentXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s</w:body></w:document>`, body.String())

	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	contentTypesXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  relsXML,
		"word/_rels/document.xml.rels": relsXML,
		"word/document.xml":            documentXML,
	} {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestExtractText_DocxParagraphsJoinedByNewline(t *testing.T) {
	data := buildDocx(t, "John Doe", "Software Engineer", "5 years of Go experience")

	extractor := NewExtractorService()
	text, err := extractor.ExtractText(data, models.FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, "John Doe\nSoftware Engineer\n5 years of Go experience", text)
}

func TestExtractText_DocxMultipleRunsPerParagraph(t *testing.T) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Software </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p></w:body></w:document>`

	data := buildDocxRaw(t, documentXML)

	extractor := NewExtractorService()
	text, err := extractor.ExtractText(data, models.FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, "Software Engineer", text)
}

func TestExtractText_DocxWithNoText(t *testing.T) {
	data := buildDocx(t, "", "", "")

	extractor := NewExtractorService()
	_, err := extractor.ExtractText(data, models.FormatDOCX)

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	extractor := NewExtractorService()
	_, err := extractor.ExtractText([]byte("plain text payload"), "txt")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	extractor := NewExtractorService()
	_, err := extractor.ExtractText([]byte("this is not a pdf"), models.FormatPDF)

	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	extractor := NewExtractorService()
	_, err := extractor.ExtractText([]byte("this is not a zip archive"), models.FormatDOCX)

	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtractText_Idempotent(t *testing.T) {
	data := buildDocx(t, "John Doe", "Software Engineer")

	extractor := NewExtractorService()

	first, err := extractor.ExtractText(data, models.FormatDOCX)
	require.NoError(t, err)
	second, err := extractor.ExtractText(data, models.FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// buildDocxRaw is buildDocx with a caller-supplied document.xml.
func buildDocxRaw(t *testing.T, documentXML string) []byte {
	t.Helper()

	relsXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"_rels/.rels":                  relsXML,
		"word/_rels/document.xml.rels": relsXML,
		"word/document.xml":            documentXML,
	} {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}
