package deboiler

import "sort"

// Dataset provides random access to the (url, raw_html) records crawled
// from a domain. Implementations must support concurrent calls to Get,
// since Fit and Transform both read through a worker pool.
type Dataset interface {
	// Len returns the number of records in the dataset.
	Len() int

	// Get returns the url and raw HTML body for the record at position i,
	// where i follows the dataset's natural (insertion) order.
	// Returns a DatasetError (EINTERNAL) if the record cannot be read.
	Get(i int) (url string, rawHTML []byte, err error)

	// URLs returns every URL in the dataset, in natural order, without
	// loading raw bodies.
	URLs() []string
}

// SortedURLs returns the dataset's URLs sorted in lexicographic byte
// order. The sort is stable and deterministic so that repeated Fit runs
// produce the same adjacent pairs regardless of operating mode or worker
// count.
func SortedURLs(ds Dataset) []string {
	urls := append([]string(nil), ds.URLs()...)
	sort.Strings(urls)
	return urls
}

// SliceDataset is an in-memory Dataset backed by a slice of records,
// useful for tests and small embedded uses.
type SliceDataset struct {
	urls  []string
	pages map[string][]byte
}

// NewSliceDataset builds a SliceDataset from url/html pairs. The dataset's
// natural order is the order records are passed in.
func NewSliceDataset(urls []string, html [][]byte) *SliceDataset {
	pages := make(map[string][]byte, len(urls))
	for i, u := range urls {
		pages[u] = html[i]
	}
	return &SliceDataset{urls: append([]string(nil), urls...), pages: pages}
}

func (d *SliceDataset) Len() int { return len(d.urls) }

func (d *SliceDataset) Get(i int) (string, []byte, error) {
	if i < 0 || i >= len(d.urls) {
		return "", nil, Errorf(EINVALID, "index %d out of range", i)
	}
	url := d.urls[i]
	return url, d.pages[url], nil
}

func (d *SliceDataset) URLs() []string {
	return append([]string(nil), d.urls...)
}
