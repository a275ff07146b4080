package deboiler

// ComparePair returns the signatures shared between two page
// representations, subject to the IoU near-duplicate safeguard. If either
// page has zero candidate signatures, or the pair's IoU exceeds iouMax, it
// returns an empty set and tooSimilar reflects why: true only when the IoU
// safeguard actually tripped, not for the zero-signature edge case.
func ComparePair(a, b *PageRepresentation, iouMax float64) (shared map[Signature]struct{}, tooSimilar bool) {
	if len(a.Signatures) == 0 || len(b.Signatures) == 0 {
		return map[Signature]struct{}{}, false
	}

	shared = make(map[Signature]struct{})
	for sig := range a.Signatures {
		if _, ok := b.Signatures[sig]; ok {
			shared[sig] = struct{}{}
		}
	}

	unionSize := len(a.Signatures) + len(b.Signatures) - len(shared)
	var iou float64
	if unionSize > 0 {
		iou = float64(len(shared)) / float64(unionSize)
	}

	// Inclusive on the discard side by >, not >=: exactly-threshold pairs
	// are kept.
	if iou > iouMax {
		return map[Signature]struct{}{}, true
	}
	return shared, false
}
