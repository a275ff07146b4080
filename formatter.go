package deboiler

import "strings"

// FormatCleanedPages renders a slice of CleanedPage as a single document
// for display or LLM context: each page's Markdown (falling back to its
// CleanedText when no Converter was configured) under a heading using its
// Title, falling back to its URL. Pages are separated by a blank line.
func FormatCleanedPages(pages []*CleanedPage) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		header := p.Title
		if header == "" {
			header = p.URL
		}
		body := p.Markdown
		if body == "" {
			body = p.CleanedText
		}
		parts = append(parts, "## Document: "+header+"\n"+body)
	}

	return strings.Join(parts, "\n\n")
}
