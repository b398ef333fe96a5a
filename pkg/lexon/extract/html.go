package extract

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
)

// extractHTML strips markup from an HTML contract, keeping the visible
// text with block elements separated by newlines.
func (s *Service) extractHTML(data []byte) (Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	collectText(root, &b)

	text := strings.TrimSpace(b.String())
	if text == "" {
		return Document{}, fmt.Errorf("%w: html has no visible text", internalerr.ErrNoText)
	}
	return Document{Text: text}, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head":
			return
		}
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
