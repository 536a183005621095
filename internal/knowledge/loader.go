package knowledge

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"
)

// LoadDocument reads the full text content of the reference document.
// PDF files are extracted with the pdf reader; anything else is read as
// plain text.
func LoadDocument(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("knowledge document not found at %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		return loadPDF(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read knowledge document: %w", err)
	}
	return string(data), nil
}

func loadPDF(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}
