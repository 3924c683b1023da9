package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

type docType string

const (
	typeMarkdown docType = "markdown"
	typePDF      docType = "pdf"
	typeDocx     docType = "docx"
	typeErr      docType = "err"
)

func getDocType(path string) docType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return typeMarkdown
	case ".pdf":
		return typePDF
	case ".docx", ".txt", ".rtf", ".odt":
		return typeDocx
	default:
		return typeErr
	}
}

// extractText returns the document body as markdown-ish text. Markdown files
// keep their heading structure; pdf and office formats come back as flat
// text, which the parser treats as a single untitled section.
func extractText(path string, t docType) (string, error) {
	switch t {
	case typeMarkdown:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read markdown: %w", err)
		}
		return string(data), nil
	case typePDF:
		return extractPDF(path)
	case typeDocx:
		return extractDocxTxt(path)
	default:
		return "", fmt.Errorf("unsupported content type: %s", t)
	}
}

func extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []string
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := protectExtract(page)
		if err != nil {
			extractLogger.Warn("skipping unreadable page", "page", i, "error", err)
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n\n"), nil
}

func extractDocxTxt(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract document: %w", err)
	}
	return text, nil
}

// protectExtract guards against pdf pages that hang the text extractor.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(10 * time.Second):
		return "", errors.New("page extraction timed out")
	}
}
