package quotes

import (
	"regexp"
	"sort"
	"strings"
)

// CanonicalTags is the fixed topical vocabulary. Order matters only for
// stable iteration (e.g., the tags endpoint); tag sets themselves are
// unordered.
var CanonicalTags = []string{
	"love", "life", "wisdom", "motivation", "success", "friendship",
	"happiness", "change", "courage", "time", "freedom", "education",
	"faith", "hope", "art", "philosophy", "leadership", "mindfulness",
	"peace",
}

// tagHints maps each canonical tag to a case-insensitive whole-word keyword
// pattern. A record whose text matches a pattern carries that tag even when
// the source data never supplied it.
var tagHints = map[string]*regexp.Regexp{
	"love":        regexp.MustCompile(`(?i)\b(love|heart|beloved|romance)\b`),
	"life":        regexp.MustCompile(`(?i)\b(life|living|alive|existence)\b`),
	"wisdom":      regexp.MustCompile(`(?i)\b(wisdom|wise|insight|truth|mindset|patience|discipline)\b`),
	"motivation":  regexp.MustCompile(`(?i)\b(motivat|inspir|drive|ambition|grind|discipline)\b`),
	"success":     regexp.MustCompile(`(?i)\b(success|succeed|achievement|accomplish|win)\b`),
	"friendship":  regexp.MustCompile(`(?i)\b(friend|friendship)\b`),
	"happiness":   regexp.MustCompile(`(?i)\b(happy|happiness|joy|joyful|glad)\b`),
	"change":      regexp.MustCompile(`(?i)\b(change|transform|transformation|evolve)\b`),
	"courage":     regexp.MustCompile(`(?i)\b(courage|brave|bravery|fearless)\b`),
	"time":        regexp.MustCompile(`(?i)\b(time|moment|minutes|hours|days|years)\b`),
	"freedom":     regexp.MustCompile(`(?i)\b(free|freedom|liberty)\b`),
	"education":   regexp.MustCompile(`(?i)\b(learn|learning|education|study|knowledge)\b`),
	"faith":       regexp.MustCompile(`(?i)\b(faith|belief|believe|god|divine)\b`),
	"hope":        regexp.MustCompile(`(?i)\b(hope|hopeful|optimism)\b`),
	"art":         regexp.MustCompile(`(?i)\b(art|artist|poetry|poem|music|painting)\b`),
	"philosophy":  regexp.MustCompile(`(?i)\b(philosophy|philosopher|stoic|stoicism|existential)\b`),
	"leadership":  regexp.MustCompile(`(?i)\b(lead|leader|leadership|guide|influence)\b`),
	"mindfulness": regexp.MustCompile(`(?i)\b(mindful|mindfulness|meditat|awareness)\b`),
	"peace":       regexp.MustCompile(`(?i)\b(peace|calm|serenity|tranquil)\b`),
}

// Canonicalize merges user-supplied tags with tags inferred from keyword
// matches against the record text, returning a duplicate-free, sorted slice
// of folded tags. Blank supplied tags are discarded. Canonicalize is pure and
// idempotent: the same inputs always yield the same set.
func Canonicalize(supplied []string, text string) []string {
	set := make(map[string]struct{}, len(supplied)+4)
	for _, t := range supplied {
		v := Fold(strings.TrimSpace(t))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	for _, tag := range CanonicalTags {
		if tagHints[tag].MatchString(text) {
			set[tag] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
