// Package extract pulls plain text out of uploaded resume documents.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX). Failure modes are distinct sentinel
// errors so callers can report oversized, empty, and unreadable documents
// separately instead of conflating them with an empty result.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxDocumentBytes is the documented upload limit.
const MaxDocumentBytes = 10 * 1024 * 1024

var (
	ErrTooLarge    = errors.New("document exceeds 10MB limit")
	ErrEmpty       = errors.New("document is empty")
	ErrNoText      = errors.New("no readable text in document")
	ErrUnsupported = errors.New("unsupported document type")
)

// Text extracts plain text from an in-memory document, dispatching on the
// file extension. The result is cleaned with CleanText.
func Text(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxDocumentBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	var raw string
	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		raw, err = extractPDF(data)
	case ".docx":
		raw, err = extractDOCX(data)
	case ".txt", ".md":
		raw = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(fileName))
	}
	if err != nil {
		return "", fmt.Errorf("extract text file=%s: %w", fileName, err)
	}

	cleaned := CleanText(raw)
	if cleaned == "" {
		return "", ErrNoText
	}
	return cleaned, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoText, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoText, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(readerAt, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoText, err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// stripDocxXML converts word/document.xml markup into newline-separated text.
func stripDocxXML(raw string) string {
	withBreaks := strings.ReplaceAll(raw, "</w:p>", "\n")
	return strings.TrimSpace(docxTagPattern.ReplaceAllString(withBreaks, ""))
}

var (
	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
	paragraphPattern  = regexp.MustCompile(`([.!?])\s+(\p{Lu})`)
)

// CleanText normalizes whitespace line by line and restores paragraph breaks
// after sentence boundaries so the section extractor sees stable input.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	cleaned := strings.Join(lines, "\n")
	return paragraphPattern.ReplaceAllString(cleaned, "$1\n$2")
}
