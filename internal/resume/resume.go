// Package resume extracts plain text from uploaded résumé files.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/spigell/job-matcher/internal/textutil"
)

const (
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedType = errors.New("unsupported file type")

var mimeByExt = map[string]string{
	".txt":  MimeText,
	".md":   MimeText,
	".pdf":  MimePDF,
	".docx": MimeDocx,
}

// ExtractText returns the text of a résumé with whitespace collapsed.
func ExtractText(mime string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch mime {
	case MimeText:
		text = string(data)
	case MimePDF:
		text, err = pdfText(data)
	case MimeDocx:
		text, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime)
	}
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(text), " "), nil
}

// ExtractFile picks the type from the file extension.
func ExtractFile(path string) (string, error) {
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	return ExtractText(mime, data)
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// unreadable pages are skipped, the rest of the document still counts
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString(" ")
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	// content is the raw document.xml; paragraphs end with </w:p>
	content := strings.ReplaceAll(doc.Editable().GetContent(), "</w:p>", "</w:p> ")
	text, err := textutil.HTMLToText(content)
	if err != nil {
		return "", fmt.Errorf("docx text: %w", err)
	}
	return text, nil
}
