// Package jsonl implements deboiler.Dataset over a JSON-lines crawl
// export, one record per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/globality-corp/deboiler"
)

// Options configures which record fields Dataset reads and which records
// it admits.
type Options struct {
	// URLKey names the field holding the page URL. Defaults to "url".
	URLKey string

	// ContentKey names the field holding the raw HTML body. Defaults to
	// "content".
	ContentKey string

	// StatusKey names the field holding the HTTP status code. A record is
	// rejected unless its status is in [200, 300). Leave empty to skip
	// this check.
	StatusKey string

	// ContentTypeKey names the field holding the response content type. A
	// record is rejected unless its value is exactly "text/html". Leave
	// empty to skip this check.
	ContentTypeKey string
}

func (o Options) withDefaults() Options {
	if o.URLKey == "" {
		o.URLKey = "url"
	}
	if o.ContentKey == "" {
		o.ContentKey = "content"
	}
	return o
}

// Dataset provides random access into a JSON-lines file via a byte-offset
// index built once at construction, so repeated Get calls during Fit and
// Transform reseek rather than hold the whole file in memory.
type Dataset struct {
	path    string
	opts    Options
	urls    []string
	offsets map[string]int64
}

var _ deboiler.Dataset = (*Dataset)(nil)

// Open builds a Dataset by scanning path once. Each valid URL keeps the
// position of its first occurrence, and the byte offset of its last valid
// line, so Get returns the most recent record for a repeated URL.
func Open(path string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()

	f, err := os.Open(path)
	if err != nil {
		return nil, deboiler.Errorf(deboiler.ENOTFOUND, "open %s: %v", path, err)
	}
	defer f.Close()

	ds := &Dataset{path: path, opts: opts, offsets: make(map[string]int64)}

	reader := bufio.NewReader(f)
	var offset int64
	for {
		line, readErr := reader.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			var rec map[string]any
			if jsonErr := json.Unmarshal([]byte(line), &rec); jsonErr == nil && ds.isValid(rec) {
				if url, ok := rec[opts.URLKey].(string); ok && url != "" {
					if _, seen := ds.offsets[url]; !seen {
						ds.urls = append(ds.urls, url)
					}
					ds.offsets[url] = offset
				}
			}
		}
		offset += int64(len(line))
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return nil, deboiler.Errorf(deboiler.EINTERNAL, "read %s: %v", path, readErr)
		}
	}

	return ds, nil
}

func (d *Dataset) isValid(rec map[string]any) bool {
	if d.opts.StatusKey != "" {
		status, ok := asInt(rec[d.opts.StatusKey])
		if !ok || status < 200 || status >= 300 {
			return false
		}
	}
	if d.opts.ContentTypeKey != "" {
		ct, _ := rec[d.opts.ContentTypeKey].(string)
		if ct != "text/html" {
			return false
		}
	}
	content, ok := rec[d.opts.ContentKey]
	if !ok {
		return false
	}
	_, isString := content.(string)
	return isString
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (d *Dataset) Len() int { return len(d.urls) }

func (d *Dataset) URLs() []string {
	return append([]string(nil), d.urls...)
}

// Get reopens the underlying file and seeks to the indexed offset for the
// URL at position i, reading exactly one line.
func (d *Dataset) Get(i int) (string, []byte, error) {
	if i < 0 || i >= len(d.urls) {
		return "", nil, deboiler.Errorf(deboiler.EINVALID, "index %d out of range", i)
	}
	url := d.urls[i]
	offset := d.offsets[url]

	f, err := os.Open(d.path)
	if err != nil {
		return "", nil, deboiler.Errorf(deboiler.EINTERNAL, "open %s: %v", d.path, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return "", nil, deboiler.Errorf(deboiler.EINTERNAL, "seek %s: %v", d.path, err)
	}

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", nil, deboiler.Errorf(deboiler.EINTERNAL, "read %s: %v", d.path, err)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return "", nil, deboiler.Errorf(deboiler.EINTERNAL, "decode record for %s: %v", url, err)
	}
	content, _ := rec[d.opts.ContentKey].(string)
	return url, []byte(content), nil
}
