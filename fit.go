package deboiler

import (
	"context"
	"sync"
	"time"

	"github.com/globality-corp/deboiler/deboilermetrics"
)

// Deboiler learns a domain's recurring boilerplate subtrees from a
// crawled sample (Fit) and strips them from individual pages (Transform).
// A zero Deboiler is not usable; construct one with New.
type Deboiler struct {
	cfg  Config
	tags map[string]struct{}

	mu          sync.RWMutex
	boilerplate *DomainBoilerplate
	cachedDocs  map[string]Document
}

// New constructs a Deboiler from cfg, normalizing defaults and rejecting
// an inconsistent configuration.
func New(cfg Config) (*Deboiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalize()
	return &Deboiler{
		cfg:  cfg,
		tags: candidateTagSet(cfg.CandidateTags),
	}, nil
}

// Boilerplate returns the signature set learned by the most recent Fit
// call, or nil if Fit has not yet been called.
func (d *Deboiler) Boilerplate() *DomainBoilerplate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.boilerplate
}

// LoadBoilerplate warm-starts Transform from a previously saved signature
// set, skipping Fit entirely. Config.Domain selects which saved set to load.
func (d *Deboiler) LoadBoilerplate(ctx context.Context, store SignatureStore) error {
	sigs, err := store.Load(ctx, d.cfg.Domain)
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.boilerplate = NewDomainBoilerplate(sigs)
	d.cachedDocs = nil
	d.mu.Unlock()
	return nil
}

// SaveBoilerplate persists the signature set learned by the most recent
// Fit call under Config.Domain. Returns an EINVALID error if Fit has not
// been called yet.
func (d *Deboiler) SaveBoilerplate(ctx context.Context, store SignatureStore) error {
	bp := d.Boilerplate()
	if bp == nil {
		return Errorf(EINVALID, "deboiler: Fit must run before SaveBoilerplate")
	}
	return store.Save(ctx, d.cfg.Domain, bp.Signatures())
}

// Fit learns the domain's boilerplate signatures from ds: every page is
// parsed once and reduced to its candidate signature set, URLs are sorted
// for a deterministic adjacent-pair order, and a signature is trusted as
// boilerplate once it has been shared between at least Config.MinOccurrence
// qualifying pairs. A pair is disqualified from contributing shared
// signatures when its IoU exceeds Config.IoUMax (the two pages are near
// duplicates, not a page sharing a template with its neighbor).
//
// Datasets of fewer than two pages produce an empty boilerplate set rather
// than an error: there is no adjacent pair to compare.
func (d *Deboiler) Fit(ctx context.Context, ds Dataset) error {
	start := time.Now()
	defer func() { deboilermetrics.FitDuration.Observe(time.Since(start).Seconds()) }()

	urlIndex := make(map[string]int, ds.Len())
	for i, u := range ds.URLs() {
		urlIndex[u] = i
	}
	sortedURLs := SortedURLs(ds)

	keepDoc := d.cfg.OperationMode == ModePerformance

	if len(sortedURLs) < 2 {
		acc := newBoilerplateAccumulator()
		frozen := acc.freeze(d.cfg.MinOccurrence)
		deboilermetrics.BoilerplateSignatures.Set(float64(frozen.Len()))
		d.mu.Lock()
		d.boilerplate = frozen
		d.cachedDocs = nil
		d.mu.Unlock()
		return nil
	}

	reps, err := runIndexed(ctx, len(sortedURLs), d.cfg.NumWorkers, func(_ context.Context, i int) (*PageRepresentation, error) {
		url := sortedURLs[i]
		idx, ok := urlIndex[url]
		if !ok {
			return nil, Errorf(EINTERNAL, "url %q missing from dataset index", url)
		}
		_, raw, err := ds.Get(idx)
		if err != nil {
			return nil, err
		}
		rep, err := newPageRepresentation(url, raw, d.cfg.Parser, d.tags, keepDoc)
		if err != nil {
			d.cfg.Logger.Warn("fit: page failed to parse, treating as empty", "url", url, "error", err)
			deboilermetrics.PageParseFailures.Inc()
			return &PageRepresentation{URL: url, Signatures: map[Signature]struct{}{}}, nil
		}
		return rep, nil
	})
	if err != nil {
		return err
	}

	acc := newBoilerplateAccumulator()
	var discarded int
	for i := 0; i < len(reps)-1; i++ {
		deboilermetrics.PairsCompared.Inc()
		shared, tooSimilar := ComparePair(reps[i], reps[i+1], d.cfg.IoUMax)
		if tooSimilar {
			discarded++
			deboilermetrics.PairsDiscarded.Inc()
			continue
		}
		acc.addShared(shared)
	}
	frozen := acc.freeze(d.cfg.MinOccurrence)
	deboilermetrics.BoilerplateSignatures.Set(float64(frozen.Len()))

	var cachedDocs map[string]Document
	if keepDoc {
		cachedDocs = make(map[string]Document, len(reps))
		for _, rep := range reps {
			if rep.Doc != nil {
				cachedDocs[rep.URL] = rep.Doc
			}
		}
	}

	d.mu.Lock()
	d.boilerplate = frozen
	d.cachedDocs = cachedDocs
	d.mu.Unlock()

	d.cfg.Logger.Info("fit complete",
		"domain", d.cfg.Domain,
		"pages", len(sortedURLs),
		"pairs_discarded", discarded,
		"boilerplate_signatures", frozen.Len(),
	)
	return nil
}
