package deboiler

// Page is a single crawled record: a URL and its raw HTML body.
type Page struct {
	URL     string
	RawHTML []byte
}

// PageRepresentation bundles a parsed DOM with the set of candidate
// subtree Signatures for one page. Doc is populated only in
// ModePerformance, where it is cached for reuse during Transform; it is
// nil in ModeMemory, where Transform re-parses the page on demand.
type PageRepresentation struct {
	URL        string
	Signatures map[Signature]struct{}
	Doc        Document
}

// newPageRepresentation parses rawHTML and computes its candidate
// signature set eagerly, since pair comparison needs it immediately.
// keepDoc controls whether the parsed Document is retained on the
// returned PageRepresentation (true in ModePerformance, false in
// ModeMemory).
func newPageRepresentation(url string, rawHTML []byte, parser Parser, tags map[string]struct{}, keepDoc bool) (*PageRepresentation, error) {
	doc, err := parser.Parse(rawHTML)
	if err != nil {
		return nil, Errorf(EINTERNAL, "parse %s: %v", url, err)
	}

	nodes := doc.CandidateSubtrees(tags)
	sigs := make(map[Signature]struct{}, len(nodes))
	for _, n := range nodes {
		sigs[HashSignature(n.CanonicalString())] = struct{}{}
	}

	rep := &PageRepresentation{URL: url, Signatures: sigs}
	if keepDoc {
		rep.Doc = doc
	}
	return rep, nil
}

// CleanedPage is the output of Transform for a single page, including the
// text-extraction family a cleaning pass produces alongside the cleaned
// HTML itself (title, headings, lists, breadcrumbs). Language detection is
// deliberately out of scope.
type CleanedPage struct {
	URL string

	// OriginalText is the page's visible text before cleaning.
	OriginalText string

	// CleanedHTML is the page's HTML after boilerplate subtrees are
	// removed.
	CleanedHTML string

	// CleanedText is the page's visible text after cleaning, whitespace
	// normalized.
	CleanedText string

	// Markdown is CleanedHTML rendered through Config.Converter. Empty
	// when no Converter is configured.
	Markdown string

	Title       string
	Headings    string
	Lists       string
	Breadcrumbs string

	// TableOfContents is the heading outline extracted from Markdown via
	// ExtractSections. Empty whenever Markdown is empty (no Converter
	// configured, or the page's cleaned content held no headings).
	TableOfContents []Section

	// ParseFailed is true when the page's raw HTML could not be parsed;
	// the page is still emitted with only URL set and every text/HTML
	// field empty, so callers can still account for every row.
	ParseFailed bool
}
