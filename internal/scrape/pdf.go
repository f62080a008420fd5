// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the whole PDF into memory (the reader needs random
// access) and returns its plain text with whitespace collapsed.
func (s *Scraper) extractPDF(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading PDF body: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting PDF text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("reading PDF text: %w", err)
	}

	text := strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
	if len(text) < s.MinLen {
		return "", fmt.Errorf("extracted PDF text too short (%d chars)", len(text))
	}
	return text, nil
}
