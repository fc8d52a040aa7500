package quotes

import "strings"

// Mode selects how multiple tag buckets combine.
type Mode string

const (
	// ModeAny unions the requested tag buckets.
	ModeAny Mode = "any"
	// ModeAll intersects the requested tag buckets.
	ModeAll Mode = "all"
)

// ParseMode maps a query-parameter value to a Mode, defaulting to ModeAny.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeAll {
		return ModeAll
	}
	return ModeAny
}

// Filter returns the records satisfying all active filters, preserving the
// relative order of the source they were drawn from (the tag index when tags
// are requested, otherwise the full item list).
//
// Tag handling: each requested tag is folded and trimmed; blank tags are
// dropped. Buckets for unknown tags are empty and ignored. Non-empty buckets
// combine by union (ModeAny) or intersection (ModeAll); membership is pointer
// identity, which is exact here because the loader dedups by content key.
// When tags were requested but no bucket exists, the result is empty.
//
// When q and author are both blank the candidate base passes through without
// a substring scan.
func (c *Cache) Filter(q, author string, tags []string, mode Mode) []*Quote {
	var base []*Quote
	if requested, buckets := c.buckets(tags); requested {
		if len(buckets) == 0 {
			return nil
		}
		if mode == ModeAll {
			base = intersectByRef(buckets)
		} else {
			base = unionByRef(buckets)
		}
	} else {
		base = c.items
	}

	qf := Fold(strings.TrimSpace(q))
	af := Fold(strings.TrimSpace(author))
	if qf == "" && af == "" {
		return base
	}

	out := make([]*Quote, 0, len(base))
	for _, r := range base {
		if r.matchesQuery(qf) && r.matchesAuthor(af) {
			out = append(out, r)
		}
	}
	return out
}

// buckets resolves the requested tags to their non-empty index buckets.
// requested is false when no usable tag was supplied at all.
func (c *Cache) buckets(tags []string) (requested bool, buckets [][]*Quote) {
	for _, t := range tags {
		t = Fold(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		requested = true
		if b := c.index[t]; len(b) > 0 {
			buckets = append(buckets, b)
		}
	}
	return requested, buckets
}

// unionByRef concatenates buckets keeping the first occurrence of each
// record, in first-seen order.
func unionByRef(buckets [][]*Quote) []*Quote {
	seen := make(map[*Quote]struct{})
	var out []*Quote
	for _, b := range buckets {
		for _, q := range b {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	return out
}

// intersectByRef keeps the records of the first bucket that appear in every
// other bucket, preserving the first bucket's order.
func intersectByRef(buckets [][]*Quote) []*Quote {
	if len(buckets) == 0 {
		return nil
	}
	first := buckets[0]
	rest := make([]map[*Quote]struct{}, 0, len(buckets)-1)
	for _, b := range buckets[1:] {
		m := make(map[*Quote]struct{}, len(b))
		for _, q := range b {
			m[q] = struct{}{}
		}
		rest = append(rest, m)
	}

	var out []*Quote
	for _, q := range first {
		inAll := true
		for _, m := range rest {
			if _, ok := m[q]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, q)
		}
	}
	return out
}
