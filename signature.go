package deboiler

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Signature is a deterministic, attribute-insensitive fingerprint of a DOM
// subtree. Two subtrees that differ only in attribute values hash to the
// same Signature; any difference in tag names, child order, child count,
// or visible text changes it.
type Signature string

// HashSignature reduces a canonical subtree string to a fixed-width
// signature using xxhash. Collisions are possible in principle but
// negligible in practice for domain-scale page sets; callers that need
// the full canonical string for debugging can retain it separately.
func HashSignature(canonical string) Signature {
	return Signature(fmt.Sprintf("%016x", xxhash.Sum64String(canonical)))
}
