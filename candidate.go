package deboiler

// DefaultCandidateTags is the fixed allow-list of tag names eligible to be
// considered boilerplate candidates.
var DefaultCandidateTags = []string{
	"div", "nav", "navigation", "footer", "header", "aside", "section",
	"form", "ul", "ol",
}

// candidateTagSet builds a lookup set from a configured tag list, falling
// back to DefaultCandidateTags when none is configured.
func candidateTagSet(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		tags = DefaultCandidateTags
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
