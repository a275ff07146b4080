package deboiler

import (
	"sync"

	"github.com/globality-corp/deboiler/bloom"
)

// domainBoilerplateEstimate sizes the Bloom pre-filter. Domain boilerplate
// sets are small relative to total candidate subtrees seen (a handful of
// recurring nav/footer/header shapes), so a modest fixed estimate keeps
// the false-positive rate low without needing to know the domain size
// upfront; the filter only needs to be right-sized enough that lookups
// stay cheap, not exact.
const domainBoilerplateEstimate = 4096

// boilerplateAccumulator is the mutable, concurrency-safe builder behind
// DomainBoilerplate: occurrence counts per signature plus a Bloom filter
// of every signature added. freeze builds the DomainBoilerplate's own
// Bloom pre-filter from the signatures that meet minOccurrence; that is
// the filter Contains() consults during Transform.
type boilerplateAccumulator struct {
	mu     sync.Mutex
	counts map[Signature]int
	seen   *bloom.Filter
}

func newBoilerplateAccumulator() *boilerplateAccumulator {
	return &boilerplateAccumulator{
		counts: make(map[Signature]int),
		seen:   bloom.NewFilter(domainBoilerplateEstimate, 0.01),
	}
}

// addShared merges one pair's shared-signature set into the accumulator.
// Safe for concurrent callers (one per worker goroutine).
func (b *boilerplateAccumulator) addShared(shared map[Signature]struct{}) {
	if len(shared) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for sig := range shared {
		b.counts[sig]++
		b.seen.Add(string(sig))
	}
}

// freeze finalizes the accumulator into an immutable DomainBoilerplate,
// keeping only signatures that met minOccurrence: a signature in
// DomainBoilerplate must have been observed as shared between at least
// minOccurrence qualifying adjacent pairs.
func (b *boilerplateAccumulator) freeze(minOccurrence int) *DomainBoilerplate {
	b.mu.Lock()
	defer b.mu.Unlock()

	sigs := make(map[Signature]struct{}, len(b.counts))
	seen := bloom.NewFilter(uint(max(len(b.counts), 1)), 0.01)
	for sig, count := range b.counts {
		if count >= minOccurrence {
			sigs[sig] = struct{}{}
			seen.Add(string(sig))
		}
	}
	return &DomainBoilerplate{sigs: sigs, seen: seen}
}

// DomainBoilerplate is the immutable, read-only snapshot Fit produces and
// Transform consumes. It is safe for concurrent reads from any number of
// Transform worker goroutines.
type DomainBoilerplate struct {
	sigs map[Signature]struct{}
	seen *bloom.Filter
}

// NewDomainBoilerplate wraps a pre-computed signature set, e.g. one loaded
// from a sqlite.SignatureStore to warm-start Transform without re-running
// Fit.
func NewDomainBoilerplate(sigs map[Signature]struct{}) *DomainBoilerplate {
	seen := bloom.NewFilter(uint(max(len(sigs), 1)), 0.01)
	out := make(map[Signature]struct{}, len(sigs))
	for sig := range sigs {
		out[sig] = struct{}{}
		seen.Add(string(sig))
	}
	return &DomainBoilerplate{sigs: out, seen: seen}
}

// Contains reports whether sig is a known boilerplate signature. The
// Bloom filter rejects the common non-member case cheaply; a positive
// Bloom test is confirmed against the exact set before returning true,
// since Bloom filters admit false positives but never false negatives.
func (d *DomainBoilerplate) Contains(sig Signature) bool {
	if d == nil || !d.seen.Test(string(sig)) {
		return false
	}
	_, ok := d.sigs[sig]
	return ok
}

// Len returns the number of signatures in the set.
func (d *DomainBoilerplate) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sigs)
}

// Signatures returns a copy of the underlying signature set, e.g. for
// persistence via a sqlite.SignatureStore.
func (d *DomainBoilerplate) Signatures() map[Signature]struct{} {
	if d == nil {
		return nil
	}
	out := make(map[Signature]struct{}, len(d.sigs))
	for sig := range d.sigs {
		out[sig] = struct{}{}
	}
	return out
}
