package resume

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	body := ""
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
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

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	got, err := ExtractText(MimeText, []byte("  Go developer\n\n  Kafka,\tRedis "))
	require.NoError(t, err)
	assert.Equal(t, "Go developer Kafka, Redis", got)
}

func TestExtractTextDocx(t *testing.T) {
	t.Parallel()

	got, err := ExtractText(MimeDocx, buildDocx(t, "Jane Doe", "Senior Go developer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Senior Go developer", got)
}

func TestExtractTextErrors(t *testing.T) {
	t.Parallel()

	_, err := ExtractText("image/png", []byte{0x89})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ExtractText(MimePDF, []byte("not a pdf"))
	assert.Error(t, err)

	_, err = ExtractText(MimeDocx, []byte("not a zip"))
	assert.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	txt := filepath.Join(dir, "cv.TXT")
	require.NoError(t, os.WriteFile(txt, []byte("Python engineer"), 0o600))
	got, err := ExtractFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "Python engineer", got)

	doc := filepath.Join(dir, "cv.docx")
	require.NoError(t, os.WriteFile(doc, buildDocx(t, "Rust"), 0o600))
	got, err = ExtractFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "Rust", got)

	_, err = ExtractFile(filepath.Join(dir, "cv.odt"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ExtractFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}
