// Package fs writes a Transform run's CleanedPage output to disk as
// markdown files, mirroring each page's URL path, with atomic commit
// semantics so a partially written batch never overwrites a prior good one.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/globality-corp/deboiler"
)

// Ensure FileStore implements the page-sink contract cmd/deboiler expects
// at compile time.
var _ interface {
	Save(context.Context, *deboiler.CleanedPage) error
	Commit() error
	Abort() error
} = (*FileStore)(nil)

// FileStore saves cleaned pages with atomic update semantics: pages are
// written to a temporary directory, then moved into place in one rename
// on Commit. A caller that errors out partway through a batch should call
// Abort instead, leaving any previously committed output untouched.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one cleaned page to the store's temporary directory.
func (s *FileStore) Save(ctx context.Context, page *deboiler.CleanedPage) error {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatCleanedPage(page)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// FormatCleanedPage renders a cleaned page as markdown with YAML
// frontmatter, preferring the rendered Markdown body and falling back to
// CleanedText for pages with no Converter configured.
func FormatCleanedPage(page *deboiler.CleanedPage) string {
	body := page.Markdown
	if body == "" {
		body = page.CleanedText
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\ncleaned: ")
	b.WriteString(time.Now().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Commit atomically replaces the final output directory with the
// temporary one, discarding any previous contents.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory, leaving any previously
// committed output untouched.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	if path == "" || path == "/" {
		return "index.md", nil
	}

	if strings.Contains(path, "..") {
		return "", deboiler.Errorf(deboiler.EINVALID, "path traversal in url %q", rawURL)
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}
