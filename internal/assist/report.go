// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// exaResearchBase is Exa's OpenAI-compatible chat endpoint used for research
// report tasks. Package-level var for test substitution.
var exaResearchBase = "https://api.exa.ai/chat/completions"

// ResearchReport runs an Exa research task for the query and returns the
// synthesized report. Unlike the per-record helpers this uses the original
// query: the research task benefits from the broader phrasing.
func ResearchReport(ctx context.Context, client *http.Client, apiKey, query string) (string, error) {
	body, err := json.Marshal(exaChatRequest{
		Model: "exa-research",
		Messages: []exaChatMessage{{
			Role:    "user",
			Content: "Provide a comprehensive, concise, and structured summary of the research topic: " + query,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding Exa research request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, exaResearchBase, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Exa research request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Exa research API returned HTTP %d", resp.StatusCode)
	}

	var cr exaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("parsing Exa research response: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no report content generated")
	}
	return cr.Choices[0].Message.Content, nil
}

// OpenAI-compatible chat JSON structures.
type exaChatRequest struct {
	Model    string           `json:"model"`
	Messages []exaChatMessage `json:"messages"`
}

type exaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type exaChatResponse struct {
	Choices []exaChatChoice `json:"choices"`
}

type exaChatChoice struct {
	Message exaChatMessage `json:"message"`
}
