package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal WordprocessingML package in memory.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText(TypePlainText, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractText_Docx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Go &amp; Postgres</w:t></w:r><w:r><w:tab/><w:t>2019</w:t></w:r></w:p>`)

	text, err := ExtractText(TypeDOCX, data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo & Postgres 2019", CleanText(text))
}

func TestIngest_Docx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Senior   Engineer</w:t></w:r></w:p>`)

	text, meta, err := Ingest("resume.docx", "application/octet-stream", data)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", text)
	assert.Equal(t, TypeDOCX, meta.ContentType)
}

func TestExtractText_InvalidDocx(t *testing.T) {
	_, err := ExtractText(TypeDOCX, []byte("not a zip"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, TypeDOCX, extractionErr.ContentType)
	assert.Contains(t, err.Error(), "failed to parse docx")
}

func TestExtractText_InvalidPDF(t *testing.T) {
	_, err := ExtractText(TypePDF, []byte("not a pdf"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, err.Error(), "failed to read pdf")
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89, 'P', 'N', 'G'})

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.ContentType)
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		declared string
		data     []byte
		want     string
	}{
		{name: "declared pdf", filename: "upload", declared: "application/pdf", want: TypePDF},
		{name: "declared with params", filename: "x", declared: "text/plain; charset=utf-8", want: TypePlainText},
		{name: "generic declared falls back to extension", filename: "cv.DOCX", declared: "application/octet-stream", want: TypeDOCX},
		{name: "markdown extension", filename: "cv.md", want: TypeMarkdown},
		{name: "pdf magic", filename: "upload", data: []byte("%PDF-1.7\n"), want: TypePDF},
		{name: "sniffed text", filename: "upload", data: []byte("Jane Doe\nEngineer"), want: TypePlainText},
		{name: "sniffed png", filename: "upload", data: []byte("\x89PNG\r\n\x1a\n"), want: "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectContentType(tt.filename, tt.declared, tt.data))
		})
	}
}
