package deboiler_test

import (
	"testing"

	"github.com/globality-corp/deboiler"
	"github.com/stretchr/testify/assert"
)

func sigSet(sigs ...deboiler.Signature) map[deboiler.Signature]struct{} {
	out := make(map[deboiler.Signature]struct{}, len(sigs))
	for _, s := range sigs {
		out[s] = struct{}{}
	}
	return out
}

func TestComparePair(t *testing.T) {
	t.Parallel()

	t.Run("returns shared signatures below the IoU threshold", func(t *testing.T) {
		t.Parallel()
		a := &deboiler.PageRepresentation{URL: "a", Signatures: sigSet("nav", "footer", "article-a")}
		b := &deboiler.PageRepresentation{URL: "b", Signatures: sigSet("nav", "footer", "article-b")}

		shared, tooSimilar := deboiler.ComparePair(a, b, 0.9)

		assert.False(t, tooSimilar)
		assert.Equal(t, sigSet("nav", "footer"), shared)
	})

	t.Run("discards near-duplicate pairs above the IoU threshold", func(t *testing.T) {
		t.Parallel()
		a := &deboiler.PageRepresentation{URL: "a", Signatures: sigSet("nav", "footer", "article")}
		b := &deboiler.PageRepresentation{URL: "b", Signatures: sigSet("nav", "footer", "article")}

		shared, tooSimilar := deboiler.ComparePair(a, b, 0.5)

		assert.True(t, tooSimilar)
		assert.Empty(t, shared)
	})

	t.Run("keeps a pair exactly at the threshold", func(t *testing.T) {
		t.Parallel()
		a := &deboiler.PageRepresentation{URL: "a", Signatures: sigSet("nav", "footer")}
		b := &deboiler.PageRepresentation{URL: "b", Signatures: sigSet("nav", "footer")}

		// IoU is 1.0 here; use a threshold equal to it to exercise the
		// inclusive (> not >=) boundary.
		shared, tooSimilar := deboiler.ComparePair(a, b, 1.0)

		assert.False(t, tooSimilar)
		assert.Equal(t, sigSet("nav", "footer"), shared)
	})

	t.Run("zero signatures on either side is not a near-duplicate", func(t *testing.T) {
		t.Parallel()
		a := &deboiler.PageRepresentation{URL: "a", Signatures: sigSet()}
		b := &deboiler.PageRepresentation{URL: "b", Signatures: sigSet("nav")}

		shared, tooSimilar := deboiler.ComparePair(a, b, 0.9)

		assert.False(t, tooSimilar)
		assert.Empty(t, shared)
	})
}
