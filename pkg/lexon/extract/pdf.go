package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

// extractPDF pulls text out of every readable page. Pages that fail to
// decode are skipped rather than failing the document; a PDF with no
// readable text at all is an error.
func (s *Service) extractPDF(data []byte) (Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	pages := make([]string, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i-1] = text
	}

	text := assemblePages(pages)
	if text == "" {
		return Document{}, fmt.Errorf("%w: pdf has no readable text", internalerr.ErrNoText)
	}
	return Document{Text: text, Pages: total}, nil
}
