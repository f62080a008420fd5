// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order to locate the main article body
// before falling back to all body paragraphs.
var contentSelectors = []string{
	"article",
	"[role='main']",
	"main",
	".post-content",
	".article-content",
	".entry-content",
	".content",
}

// boilerplateRe strips navigation and legal phrases that survive content
// extraction on publisher pages.
var boilerplateRe = regexp.MustCompile(`(?i)(Skip to content|Privacy Policy|Terms of Use|Cookie Policy|All Rights Reserved|Copyright © \d{4}[^.]*|Read more|Continue reading)`)

// extractHTML parses the page and returns the text of its main content
// region. Pages whose extracted text falls below MinLen are rejected: short
// output usually means the extraction grabbed chrome, not the article.
func (s *Scraper) extractHTML(body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header, aside, form, noscript, img, svg, canvas").Remove()

	var b strings.Builder
	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		sel.First().Find("p, h1, h2, h3, li").Each(func(_ int, el *goquery.Selection) {
			if text := strings.TrimSpace(el.Text()); len(text) > 20 {
				b.WriteString(text)
				b.WriteString(" ")
			}
		})
		if b.Len() > 0 {
			break
		}
	}

	if b.Len() == 0 {
		doc.Find("body p").Each(func(_ int, el *goquery.Selection) {
			if text := strings.TrimSpace(el.Text()); text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		})
	}

	text := boilerplateRe.ReplaceAllString(b.String(), "")
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	if len(text) < s.MinLen {
		return "", fmt.Errorf("scraped HTML content too short (%d chars): page may lack main article text", len(text))
	}
	return text, nil
}
