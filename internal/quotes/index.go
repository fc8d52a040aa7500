package quotes

// buildTagIndex maps each tag to the ordered list of records carrying it,
// iterating items in order and appending until the bucket reaches perTagCap.
// Records past a full bucket stay in the global list and in other tags'
// buckets; the result is reproducible for a given corpus and cap.
func buildTagIndex(items []*Quote, perTagCap int) map[string][]*Quote {
	idx := make(map[string][]*Quote)
	for _, q := range items {
		for _, t := range q.Tags {
			bucket := idx[t]
			if perTagCap > 0 && len(bucket) >= perTagCap {
				continue
			}
			idx[t] = append(bucket, q)
		}
	}
	return idx
}
