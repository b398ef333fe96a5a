// Package extract turns uploaded document bytes into the plain text the
// clause engine consumes. PDF pages are separated by literal
// "--- Page N ---" markers so downstream clauses can carry a page
// reference.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

// Document is the extraction result for one uploaded file.
type Document struct {
	Text  string
	Pages int // 0 for formats without page structure
}

// TextExtractor converts raw document bytes into text.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (Document, error)
}

// Service dispatches extraction by file extension: PDF and HTML get
// dedicated handling, anything else is treated as plain text.
type Service struct {
	maxBytes int64
}

// New creates an extraction service with the given size cap in megabytes.
func New(maxSizeMB int) *Service {
	return &Service{maxBytes: int64(maxSizeMB) * 1024 * 1024}
}

// Extract converts data into a Document. Oversized input and input that
// yields no text are errors, never silently empty results.
func (s *Service) Extract(ctx context.Context, filename string, data []byte) (Document, error) {
	if int64(len(data)) > s.maxBytes {
		return Document{}, fmt.Errorf("%w: %d bytes exceeds %d MB limit",
			internalerr.ErrTooLarge, len(data), s.maxBytes/(1024*1024))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return s.extractPDF(data)
	case ".html", ".htm":
		return s.extractHTML(data)
	default:
		text := strings.TrimSpace(string(data))
		if text == "" {
			return Document{}, internalerr.ErrNoText
		}
		return Document{Text: text}, nil
	}
}

// assemblePages joins per-page texts with the page markers the clause
// engine's metadata extraction recognizes. Empty pages are skipped,
// keeping the original page numbering.
func assemblePages(pages []string) string {
	var b strings.Builder
	for i, page := range pages {
		if page == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n", i+1)
		b.WriteString(page)
	}
	return strings.TrimSpace(b.String())
}
