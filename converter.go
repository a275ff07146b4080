package deboiler

import "context"

// SignatureStore persists a domain's learned boilerplate signature set
// between processes, so a Fit pass run once against a crawl can be reused
// by later Transform-only runs without re-learning it.
type SignatureStore interface {
	// Load retrieves the signature set previously saved for domain.
	// Returns an ENOTFOUND error if nothing has been saved for it yet.
	Load(ctx context.Context, domain string) (map[Signature]struct{}, error)

	// Save replaces any previously saved signature set for domain with sigs.
	Save(ctx context.Context, domain string, sigs map[Signature]struct{}) error
}

// Converter turns cleaned HTML into Markdown. It is optional: when a
// Deboiler's Config.Converter is nil, Transform leaves CleanedPage.Markdown
// empty rather than erroring.
type Converter interface {
	// Convert transforms HTML content into Markdown. Unlike a converter
	// fed raw crawled pages, a Converter here may legitimately receive
	// empty input — a page that was entirely boilerplate cleans down to
	// nothing — and should return "" rather than an error in that case.
	Convert(html string) (string, error)
}
