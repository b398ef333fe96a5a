package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cognilaw/lexon/pkg/lexon"
)

// chunkSize caps how much document text goes into a single model call;
// longer documents are split on paragraph boundaries.
const chunkSize = 8000

// Client calls an OpenAI-compatible chat completion endpoint to extract
// clauses. Ollama's /v1/chat/completions works unchanged.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	HTTPClient *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type rawClause struct {
	ClauseName string `json:"clause_name"`
	Content    string `json:"content"`
}

// ExtractClauses asks the model to split document text into clauses.
// Large documents are processed chunk by chunk and the results
// concatenated in order.
func (c *Client) ExtractClauses(ctx context.Context, text string) ([]lexon.RawClause, error) {
	if c.BaseURL == "" || c.Model == "" {
		return nil, fmt.Errorf("llm: base URL and model required")
	}

	var clauses []lexon.RawClause
	for _, chunk := range splitChunks(text, chunkSize) {
		part, err := c.extractChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, part...)
	}
	return clauses, nil
}

func (c *Client) extractChunk(ctx context.Context, text string) ([]lexon.RawClause, error) {
	system := "You are a legal document analyst. Extract every distinct clause from the document. " +
		"Respond with ONLY a JSON array of objects with keys \"clause_name\" and \"content\". No prose."
	user := "Document text:\n\n" + text

	payload, err := c.send(ctx, []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}
	if len(payload.Choices) == 0 {
		return nil, fmt.Errorf("llm: empty response")
	}
	return parseClauses(payload.Choices[0].Message.Content)
}

func (c *Client) send(ctx context.Context, messages []chatMessage) (*chatResponse, error) {
	reqBody, err := json.Marshal(chatRequest{Model: c.Model, Messages: messages})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("llm error: %s", payload.Error.Message)
	}
	return &payload, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 120 * time.Second}
}

// parseClauses reads the model's JSON array, tolerating a markdown code
// fence around it.
func parseClauses(response string) ([]lexon.RawClause, error) {
	body := strings.TrimSpace(response)
	if start := strings.Index(body, "["); start >= 0 {
		if end := strings.LastIndex(body, "]"); end > start {
			body = body[start : end+1]
		}
	}

	var raw []rawClause
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("llm: parse response: %w", err)
	}

	clauses := make([]lexon.RawClause, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.ClauseName)
		content := strings.TrimSpace(r.Content)
		if name == "" && content == "" {
			continue
		}
		clauses = append(clauses, lexon.RawClause{Name: name, Content: content})
	}
	return clauses, nil
}

// splitChunks cuts text into pieces of at most max bytes, preferring
// paragraph breaks and falling back to hard cuts for unbroken runs.
func splitChunks(text string, max int) []string {
	if len(text) <= max {
		return []string{text}
	}

	var pieces []string
	var current strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		for len(para) > max {
			pieces = append(pieces, current.String(), para[:max])
			current.Reset()
			para = para[max:]
		}
		if current.Len() > 0 && current.Len()+len(para)+2 > max {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}

	chunks := pieces[:0]
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			chunks = append(chunks, p)
		}
	}
	return chunks
}
