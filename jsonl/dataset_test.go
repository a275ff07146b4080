package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/globality-corp/deboiler"
	"github.com/globality-corp/deboiler/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "crawl.jsonl")
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenAndGet(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		`{"url": "https://example.com/a", "content": "<html>A</html>", "status": 200, "content_type": "text/html"}`,
		`{"url": "https://example.com/b", "content": "<html>B</html>", "status": 200, "content_type": "text/html"}`,
	)

	ds, err := jsonl.Open(path, jsonl.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, ds.URLs())

	url, raw, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", url)
	assert.Equal(t, "<html>A</html>", string(raw))

	url, raw, err = ds.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/b", url)
	assert.Equal(t, "<html>B</html>", string(raw))
}

func TestOpenSkipsInvalidRecords(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		`{"url": "https://example.com/ok", "content": "<html>OK</html>", "status": 200, "content_type": "text/html"}`,
		`{"url": "https://example.com/not-found", "content": "<html>404</html>", "status": 404, "content_type": "text/html"}`,
		`{"url": "https://example.com/wrong-type", "content": "<html>X</html>", "status": 200, "content_type": "application/json"}`,
		`not json at all`,
	)

	ds, err := jsonl.Open(path, jsonl.Options{StatusKey: "status", ContentTypeKey: "content_type"})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, []string{"https://example.com/ok"}, ds.URLs())
}

func TestOpenHonorsFieldNameOverrides(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		`{"page_url": "https://example.com/a", "body": "<html>A</html>"}`,
	)

	ds, err := jsonl.Open(path, jsonl.Options{URLKey: "page_url", ContentKey: "body"})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	url, raw, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a", url)
	assert.Equal(t, "<html>A</html>", string(raw))
}

func TestOpenKeepsFirstOccurrenceOrderOnDuplicateURL(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		`{"url": "https://example.com/a", "content": "<html>first</html>"}`,
		`{"url": "https://example.com/b", "content": "<html>B</html>"}`,
		`{"url": "https://example.com/a", "content": "<html>second</html>"}`,
	)

	ds, err := jsonl.Open(path, jsonl.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, ds.URLs())

	_, raw, err := ds.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "<html>second</html>", string(raw))
}

func TestGetOutOfRange(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, `{"url": "https://example.com/a", "content": "<html>A</html>"}`)
	ds, err := jsonl.Open(path, jsonl.Options{})
	require.NoError(t, err)

	_, _, err = ds.Get(5)
	assert.Error(t, err)
	assert.Equal(t, deboiler.EINVALID, deboiler.ErrorCode(err))
}
