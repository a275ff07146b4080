package deboiler

// Parser turns raw HTML bytes into a Document. Implementations must be
// tolerant of malformed HTML — real-world crawl output is never fully
// valid — and must never panic on it.
type Parser interface {
	Parse(rawHTML []byte) (Document, error)
}

// Document wraps a parsed HTML tree and exposes the operations Fit and
// Transform need: candidate discovery, serialization, and a family of
// text extractors for the page's title, headings, lists and breadcrumbs.
type Document interface {
	// Root returns the document's root node.
	Root() Node

	// CandidateSubtrees returns every descendant node whose tag name is in
	// tags, in document order (depth-first, pre-order). Order is fixed so
	// tie-breaking during Transform is deterministic.
	CandidateSubtrees(tags map[string]struct{}) []Node

	// Serialize renders the document's current (possibly mutated) state as
	// HTML.
	Serialize() string

	// Text returns the document's concatenated visible text, with
	// whitespace runs collapsed to single spaces and block-level
	// boundaries preserved as newlines.
	Text() string

	// Title returns the trimmed text of the document's <title> element,
	// or "" if absent.
	Title() string

	// Headings returns the concatenated, newline-separated text of every
	// h1-h6 element in document order.
	Headings() string

	// Lists returns the concatenated, newline-separated text of every
	// <ul>/<ol> element.
	Lists() string

	// Breadcrumbs returns the best-guess breadcrumb trail text, using an
	// attribute-substring heuristic ("breadcrumbs" then "breadcrumb" then
	// "crumb", most restrictive first, longest match under a
	// 200-character cap), or "" if none match.
	Breadcrumbs() string

	// Clone returns an independent copy of the document whose tree shares
	// no nodes with the receiver: mutating one (via Node.Remove) never
	// affects the other. Callers that hold onto a Document beyond a single
	// cleaning pass — a cache, a second Transform — must clone before
	// mutating it.
	Clone() Document
}

// Node is a single element in a parsed Document.
type Node interface {
	// TagName returns the node's lowercase tag name.
	TagName() string

	// CanonicalString returns the deterministic, attribute-insensitive
	// serialization of this subtree: a recursive pre-order walk emitting
	// an opening tag marker, the canonical strings of children in order,
	// and a closing tag marker; text nodes contribute their
	// whitespace-collapsed, trimmed content; attributes, comments, and
	// processing instructions are never emitted.
	CanonicalString() string

	// Remove detaches the node from its parent. Safe to call more than
	// once; a second call on an already-detached node is a no-op.
	Remove()
}
