package deboiler

import (
	"context"
	"time"

	"github.com/globality-corp/deboiler/deboilermetrics"
)

// Transform strips the boilerplate learned by Fit from every page in ds
// and returns one CleanedPage per record, delivered on the returned
// channel in the dataset's natural order. Fit must have completed
// successfully first; calling Transform before Fit returns an EINVALID
// error.
//
// A page whose raw HTML fails to parse is not skipped: it is emitted with
// ParseFailed set and its text/HTML fields left empty, so the output
// channel always has exactly ds.Len() entries.
func (d *Deboiler) Transform(ctx context.Context, ds Dataset) (<-chan *CleanedPage, error) {
	start := time.Now()
	defer func() { deboilermetrics.TransformDuration.Observe(time.Since(start).Seconds()) }()

	d.mu.RLock()
	boilerplate := d.boilerplate
	cachedDocs := d.cachedDocs
	d.mu.RUnlock()

	if boilerplate == nil {
		return nil, Errorf(EINVALID, "transform: Fit must be called before Transform")
	}

	n := ds.Len()
	pages, err := runIndexed(ctx, n, d.cfg.NumWorkers, func(_ context.Context, i int) (*CleanedPage, error) {
		url, raw, err := ds.Get(i)
		if err != nil {
			return nil, err
		}
		return d.transformOne(url, raw, boilerplate, cachedDocs)
	})
	if err != nil {
		return nil, err
	}

	out := make(chan *CleanedPage, n)
	for _, p := range pages {
		out <- p
	}
	close(out)
	return out, nil
}

// transformOne cleans a single page: remove every candidate subtree whose
// signature is known boilerplate, then extract the resulting text family.
func (d *Deboiler) transformOne(url string, raw []byte, boilerplate *DomainBoilerplate, cachedDocs map[string]Document) (*CleanedPage, error) {
	doc, ok := cachedDocs[url]
	if !ok {
		parsed, err := d.cfg.Parser.Parse(raw)
		if err != nil {
			d.cfg.Logger.Warn("transform: page failed to parse", "url", url, "error", err)
			deboilermetrics.PageParseFailures.Inc()
			return &CleanedPage{URL: url, ParseFailed: true}, nil
		}
		doc = parsed
	} else {
		// doc is the instance Fit cached for reuse; clone it before removing
		// anything so the cache still holds an unmutated tree for the next
		// Transform call.
		doc = doc.Clone()
	}
	defer deboilermetrics.PagesCleaned.Inc()

	originalText := doc.Text()
	title := doc.Title()
	headings := doc.Headings()
	lists := doc.Lists()
	breadcrumbs := doc.Breadcrumbs()

	for _, node := range doc.CandidateSubtrees(d.tags) {
		if boilerplate.Contains(HashSignature(node.CanonicalString())) {
			node.Remove()
		}
	}

	cleanedHTML := doc.Serialize()
	cleanedText := doc.Text()

	var markdown string
	if d.cfg.Converter != nil {
		md, err := d.cfg.Converter.Convert(cleanedHTML)
		if err != nil {
			return nil, Errorf(EINTERNAL, "convert %s: %v", url, err)
		}
		markdown = md
	}

	return &CleanedPage{
		URL:             url,
		OriginalText:    originalText,
		CleanedHTML:     cleanedHTML,
		CleanedText:     cleanedText,
		Markdown:        markdown,
		Title:           title,
		Headings:        headings,
		Lists:           lists,
		Breadcrumbs:     breadcrumbs,
		TableOfContents: ExtractSections(markdown),
	}, nil
}
