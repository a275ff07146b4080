package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/globality-corp/deboiler"
	"github.com/globality-corp/deboiler/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic File Storage
// The store uses a temp directory for atomic updates.

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/docs/api",
		Title:       "API Reference",
		CleanedText: "API\n\nWelcome to the API.",
	})

	require.NoError(t, err)

	tempPath := filepath.Join(base, "output.tmp", "docs", "api.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	finalPath := filepath.Join(base, "output", "docs", "api.md")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/a",
		Title:       "A",
		CleanedText: "A",
	})
	require.NoError(t, err)

	err = store.Commit()
	require.NoError(t, err)

	finalPath := filepath.Join(base, "output", "a.md")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/a",
		Title:       "A",
		CleanedText: "A",
	})
	require.NoError(t, err)

	err = store.Abort()
	require.NoError(t, err)

	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	finalDir := filepath.Join(base, "output")
	_, err = os.Stat(finalDir)
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_IncludesFrontmatter(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/intro",
		Title:       "Introduction",
		CleanedText: "Welcome",
	})
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(base, "output", "intro.md"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "---")
	assert.Contains(t, string(content), "source: https://example.com/intro")
	assert.Contains(t, string(content), "title: Introduction")
	assert.Contains(t, string(content), "Welcome")
}

func TestFileStore_PrefersMarkdownOverCleanedText(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/intro",
		Title:       "Introduction",
		CleanedText: "plain text fallback",
		Markdown:    "# Welcome",
	})
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(base, "output", "intro.md"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "# Welcome")
	assert.NotContains(t, string(content), "plain text fallback")
}

func TestFileStore_PreservesURLPathStructure(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/docs/api/users",
		Title:       "Users API",
		CleanedText: "Users",
	})
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	expectedPath := filepath.Join(base, "output", "docs", "api", "users.md")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err, "nested path structure should be preserved")
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	err := store.Save(context.Background(), &deboiler.CleanedPage{
		URL:         "https://example.com/../../../etc/passwd",
		Title:       "Malicious",
		CleanedText: "bad content",
	})

	require.Error(t, err, "path traversal should be rejected")
	assert.Contains(t, err.Error(), "path traversal")
}

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "simple path", url: "https://example.com/docs/api/users", want: "docs/api/users.md"},
		{name: "trailing slash becomes index", url: "https://example.com/docs/", want: "docs/index.md"},
		{name: "root path becomes index", url: "https://example.com/", want: "index.md"},
		{name: "no trailing slash", url: "https://example.com/docs", want: "docs.md"},
		{name: "ignores query string", url: "https://example.com/docs/api?version=2", want: "docs/api.md"},
		{name: "ignores fragment", url: "https://example.com/docs/api#section", want: "docs/api.md"},
		{name: "root without trailing slash", url: "https://example.com", want: "index.md"},
		{name: "deep nesting", url: "https://example.com/a/b/c/d/e/f", want: "a/b/c/d/e/f.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
