package quotes

// lcg returns a pseudo-random float source in [0,1) backed by a linear
// congruential generator. A zero seed is coerced to 1 so the stream is never
// degenerate. The same seed always yields the same stream.
func lcg(seed uint32) func() float64 {
	s := seed
	if s == 0 {
		s = 1
	}
	return func() float64 {
		s = s*1664525 + 1013904223
		return float64(s) / (1 << 32)
	}
}

// Shuffle returns a full pseudo-random permutation of items for the given
// seed, leaving the input untouched. The permutation is a Fisher–Yates pass
// from the last index down to 1; identical (items, seed) inputs produce
// byte-identical orderings, which is what lets stateless requests page
// through one logical shuffle by resubmitting the same seed.
func Shuffle(items []*Quote, seed uint32) []*Quote {
	out := make([]*Quote, len(items))
	copy(out, items)
	rnd := lcg(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rnd() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Paginate slices one 1-based page out of permuted. hasMore reports whether
// records remain beyond the returned page. Pages past the end yield an empty
// slice with hasMore false.
func Paginate(permuted []*Quote, page, limit int) (results []*Quote, hasMore bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	start := (page - 1) * limit
	if start >= len(permuted) {
		return nil, false
	}
	end := start + limit
	if end > len(permuted) {
		end = len(permuted)
	}
	results = permuted[start:end]
	return results, len(permuted) > start+len(results)
}
