package quotes

import (
	"reflect"
	"testing"
)

func makeQuotes(n int) []*Quote {
	out := make([]*Quote, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, New("quote "+string(rune('a'+i%26))+string(rune('a'+i/26)), "A", nil))
	}
	return out
}

func TestLCG_DeterministicStream(t *testing.T) {
	a, b := lcg(7), lcg(7)
	for i := 0; i < 100; i++ {
		x, y := a(), b()
		if x != y {
			t.Fatalf("streams diverged at %d: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("value out of [0,1): %v", x)
		}
	}
}

func TestLCG_ZeroSeedCoercedToOne(t *testing.T) {
	z, one := lcg(0), lcg(1)
	for i := 0; i < 10; i++ {
		if z() != one() {
			t.Fatalf("seed 0 should behave as seed 1")
		}
	}
}

func TestShuffle_DeterministicPerSeed(t *testing.T) {
	items := makeQuotes(50)
	p1 := Shuffle(items, 42)
	p2 := Shuffle(items, 42)
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("same seed should give identical permutations")
	}
	p3 := Shuffle(items, 43)
	if reflect.DeepEqual(p1, p3) {
		t.Fatalf("different seeds should (practically) give different permutations")
	}
}

func TestShuffle_IsPermutationAndInputUntouched(t *testing.T) {
	items := makeQuotes(30)
	orig := make([]*Quote, len(items))
	copy(orig, items)

	p := Shuffle(items, 9)
	if !reflect.DeepEqual(items, orig) {
		t.Fatalf("input slice was mutated")
	}
	if len(p) != len(items) {
		t.Fatalf("length changed: %d vs %d", len(p), len(items))
	}
	seen := make(map[*Quote]struct{}, len(p))
	for _, q := range p {
		seen[q] = struct{}{}
	}
	if len(seen) != len(items) {
		t.Fatalf("permutation dropped or duplicated records")
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	if got := Shuffle(nil, 5); len(got) != 0 {
		t.Fatalf("nil input should give empty output")
	}
	one := makeQuotes(1)
	if got := Shuffle(one, 5); len(got) != 1 || got[0] != one[0] {
		t.Fatalf("single-item shuffle unexpected")
	}
}

func TestPaginate_WalksWholePermutation(t *testing.T) {
	items := makeQuotes(10)
	p := Shuffle(items, 3)

	var walked []*Quote
	for page := 1; ; page++ {
		res, more := Paginate(p, page, 3)
		walked = append(walked, res...)
		if !more {
			break
		}
	}
	if !reflect.DeepEqual(walked, p) {
		t.Fatalf("paging did not reproduce the permutation")
	}
}

func TestPaginate_HasMoreEdges(t *testing.T) {
	p := makeQuotes(6)

	res, more := Paginate(p, 1, 3)
	if len(res) != 3 || !more {
		t.Fatalf("page 1: len=%d more=%v; want 3/true", len(res), more)
	}
	res, more = Paginate(p, 2, 3)
	if len(res) != 3 || more {
		t.Fatalf("last exact page: len=%d more=%v; want 3/false", len(res), more)
	}
	res, more = Paginate(p, 3, 3)
	if len(res) != 0 || more {
		t.Fatalf("past-the-end page should be empty/false, got len=%d more=%v", len(res), more)
	}
}

func TestPaginate_ClampsPageAndLimit(t *testing.T) {
	p := makeQuotes(5)
	res, _ := Paginate(p, 0, 2)
	if len(res) != 2 || res[0] != p[0] {
		t.Fatalf("page < 1 should clamp to 1")
	}
	res, _ = Paginate(p, 1, 0)
	if len(res) != 1 {
		t.Fatalf("limit < 1 should clamp to 1, got %d", len(res))
	}
}
