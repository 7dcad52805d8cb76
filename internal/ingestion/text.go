package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpace  = regexp.MustCompile(`[ \t]+`)
	blankLines  = regexp.MustCompile(`\n\n\n+`)
	bulletPrefs = []string{"- ", "* ", "• ", "· "}
)

// CleanText normalizes extracted resume text while preserving its line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces; bullets and headings keep their leading marker
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if prefix, ok := bulletPrefix(trimmed); ok {
		return prefix + multiSpace.ReplaceAllString(strings.TrimSpace(trimmed[len(prefix):]), " ")
	}
	return multiSpace.ReplaceAllString(trimmed, " ")
}

func bulletPrefix(line string) (string, bool) {
	for _, prefix := range bulletPrefs {
		if strings.HasPrefix(line, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// IngestFromFile reads a resume file (text, PDF or DOCX) and returns its cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(path)
	return Ingest(name, "", data)
}

// Ingest extracts and cleans the text of an uploaded resume. declaredType may be empty.
func Ingest(filename, declaredType string, data []byte) (string, *Metadata, error) {
	contentType := DetectContentType(filename, declaredType, data)

	text, err := ExtractText(contentType, data)
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, &EmptyDocumentError{Filename: filename}
	}
	return cleaned, NewMetadata(cleaned, filename, contentType), nil
}
