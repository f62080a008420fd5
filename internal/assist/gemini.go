// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/research-assistant/internal/httputil"
)

// geminiAPIBase is the Gemini generateContent endpoint prefix. Package-level
// var for test substitution; the model name and API key are appended per
// request.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiBackend calls the Gemini API to generate text.
type GeminiBackend struct {
	APIKey string
	Model  string
	Client *http.Client

	// MaxRetries caps retry attempts on rate limiting; 0 uses the
	// httputil default.
	MaxRetries int
}

// Generate sends one prompt and returns the model's text response. A
// response blocked by the API (finish reason other than STOP) is an error,
// not empty output.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	model := b.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding Gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, model, b.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("Gemini API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned HTTP %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("parsing Gemini response: %w", err)
	}

	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	cand := gr.Candidates[0]
	if cand.FinishReason != "" && cand.FinishReason != "STOP" {
		return "", fmt.Errorf("generation blocked by API: %s", cand.FinishReason)
	}
	if len(cand.Content.Parts) == 0 || cand.Content.Parts[0].Text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return cand.Content.Parts[0].Text, nil
}

// Gemini API JSON structures.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}
