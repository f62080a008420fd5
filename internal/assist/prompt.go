// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assist

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// maxSummaryInput caps how much scraped text is sent to the model per
// summary request.
const maxSummaryInput = 10000

var scholarOptimizeTmpl = template.Must(template.New("scholar-optimize").Parse(`You are an AI research assistant. Your task is to rephrase a user's natural language research query into a concise, effective, and keyword-rich search query suitable for academic databases like Google Scholar.

Focus on:
- Extracting the core topic.
- Expanding abbreviations (e.g., "AI" to "Artificial Intelligence").
- Removing conversational filler ("I want to research...", "articles about...").
- Prioritizing academic terms.
- Crucially, the output must be a space-separated list of keywords. Do NOT enclose any individual phrases or keywords in double quotes. Do NOT use commas to separate keywords.

Example 1:
User Query: "i want to research Articles in AI"
Optimized Query: Artificial Intelligence research articles

Example 2:
User Query: "papers on climate change impact on agriculture"
Optimized Query: climate change agriculture impact papers

User Query: "{{.Query}}"
Optimized Query:
`))

var directoryOptimizeTmpl = template.Must(template.New("directory-optimize").Parse(`You are an AI research assistant. Your task is to rephrase a user's natural language research query into a concise, space-separated list of keywords suitable for searching academic directories like DOAJ.

Focus on:
- Extracting the core topic and key concepts.
- Expanding common abbreviations (e.g., "AI" to "Artificial Intelligence", "EHR" to "Electronic Health Record").
- Removing conversational filler ("I want to research...", "articles about...").
- Prioritizing academic terms.
- Crucially, the output must be a space-separated list of keywords with no double quotes, commas, or other punctuation between keywords.

Example 1:
User Query: "papers on climate change impact on agriculture"
Optimized Query: climate change agriculture impact

Example 2:
User Query: "Machine learning with MCP model context protocol"
Optimized Query: Machine Learning MCP model context protocol

User Query: "{{.Query}}"
Optimized Query:
`))

var summaryTmpl = template.Must(template.New("summary").Parse(`You are an AI assistant specialized in summarizing academic articles. Your task is to extract specific information from the provided text content (which could be an abstract or a full article) and present it in a structured format.

Follow these instructions precisely:
- For each section below, extract information only from the "Text Content" provided.
- If a piece of information for a specific section is not explicitly present in the "Text Content", do not include that section (its number, heading, and content) in the output at all.
- Keep sentences clear, small, and in simple language. Aim for 3-4 sentences per section if content allows.
- Do not add any introductory or concluding remarks outside the specified format.

Here is the text content to summarize:
---
{{.Content}}
---

Here is the required summary format. Only include sections for which you found information:

**1. Full Citation of Article**
{{.Citation}}

**2. Research Problem / Aim of the article**

**3. Objectives of research or article**

**4. Methodology used by the author/researcher**

**5. Key Findings of article**

**6. Discussion / Interpretation in short if any given in an article**

**7. The Conclusion of research or Article in very simple language points by points**

**8. Recommendations / Implications if given in article**

**9. Limitations (if available)**

**10. Keywords**
`))

var annotationTmpl = template.Must(template.New("annotation").Parse(`Generate an annotated bibliography entry for the following resource:
Title: {{.Title}}
{{if .Authors}}Authors: {{.Authors}}
{{end}}{{if .Year}}Year: {{.Year}}
{{end}}URL: {{.URL}}
Original Search Query: "{{.Query}}"
Summary of Resource:
---
{{.Summary}}
---
Instructions: Write a concise annotation (75-150 words) based only on the provided summary. Describe the main topic/argument, assess relevance to the original query, mention key findings if available, and evaluate its potential usefulness for research on "{{.Query}}". Format as a standard annotation paragraph.
`))

func scholarOptimizePrompt(query string) string {
	return renderTemplate(scholarOptimizeTmpl, map[string]string{"Query": query})
}

func directoryOptimizePrompt(query string) string {
	return renderTemplate(directoryOptimizeTmpl, map[string]string{"Query": query})
}

// Summarize asks the model for the structured 10-section summary of the
// given text content, anchored by a citation line built from the record's
// known bibliographic fields.
func Summarize(ctx context.Context, g Generator, r types.MergedRecord, content string) (string, error) {
	if len(content) > maxSummaryInput {
		content = content[:maxSummaryInput]
	}

	var parts []string
	if r.Authors != "" {
		parts = append(parts, r.Authors)
	}
	if r.Year != "" {
		parts = append(parts, "("+r.Year+")")
	}
	if r.Title != "" {
		parts = append(parts, r.Title)
	}
	if r.JournalName != "" {
		parts = append(parts, r.JournalName)
	}
	if r.DOI != "" {
		parts = append(parts, "DOI:"+r.DOI)
	}
	citation := "Not available in snippet."
	if len(parts) > 0 {
		citation = strings.Join(parts, ", ")
	}

	prompt := renderTemplate(summaryTmpl, map[string]string{
		"Content":  content,
		"Citation": citation,
	})
	out, err := g.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Annotate asks the model for a 75-150 word annotated-bibliography entry
// built from an existing summary.
func Annotate(ctx context.Context, g Generator, r types.MergedRecord, summary string) (string, error) {
	prompt := renderTemplate(annotationTmpl, map[string]string{
		"Title":   r.Title,
		"Authors": r.Authors,
		"Year":    r.Year,
		"URL":     r.URL,
		"Query":   r.Query,
		"Summary": summary,
	})
	out, err := g.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating annotation: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func renderTemplate(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	// The templates only reference string fields; execution cannot fail.
	tmpl.Execute(&buf, data)
	return buf.String()
}
