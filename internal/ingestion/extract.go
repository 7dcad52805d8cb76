// Package ingestion turns uploaded resume files into plain text.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported content types
const (
	TypePlainText = "text/plain"
	TypeMarkdown  = "text/markdown"
	TypePDF       = "application/pdf"
	TypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	xmlParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	xmlTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag          = regexp.MustCompile(`<[^>]+>`)
)

// UnsupportedTypeError is returned for files that are not text, PDF or DOCX
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.ContentType)
}

// EmptyDocumentError is returned when a file holds no extractable text
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no text could be extracted from %s", e.Filename)
}

// ExtractionError is returned when a PDF or DOCX file cannot be parsed
type ExtractionError struct {
	ContentType string
	Cause       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract text from %s: %v", e.ContentType, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText returns the text content of data interpreted as contentType
func ExtractText(contentType string, data []byte) (string, error) {
	switch contentType {
	case TypePlainText, TypeMarkdown:
		return string(data), nil
	case TypePDF:
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{ContentType: contentType, Cause: err}
		}
		return text, nil
	case TypeDOCX:
		text, err := extractDocxText(data)
		if err != nil {
			return "", &ExtractionError{ContentType: contentType, Cause: err}
		}
		return text, nil
	default:
		return "", &UnsupportedTypeError{ContentType: contentType}
	}
}

// DetectContentType picks the content type from the declared multipart type,
// then the file extension, then the leading bytes.
func DetectContentType(filename, declared string, data []byte) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			switch mediaType {
			case TypePlainText, TypeMarkdown, TypePDF, TypeDOCX:
				return mediaType
			}
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDOCX
	case ".txt":
		return TypePlainText
	case ".md", ".markdown":
		return TypeMarkdown
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return TypePDF
	}
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return sniffed
}

func extractPDFText(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns WordprocessingML into text, one paragraph per line
func docxXMLToText(content string) string {
	content = xmlParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
