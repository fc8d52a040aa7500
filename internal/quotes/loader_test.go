package quotes

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCorpus writes lines as a gzip-compressed file and returns its path.
func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.jsonl.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create corpus: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestLoad_MissingFileIsEmptyCorpus(t *testing.T) {
	items, total, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.gz"), 10)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if items != nil || total != 0 {
		t.Fatalf("expected empty corpus, got %d items / %d scanned", len(items), total)
	}
}

func TestLoad_NotGzip_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.gz")
	if err := os.WriteFile(path, []byte("not gzip at all"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := Load(context.Background(), path, 10); err == nil {
		t.Fatalf("expected gzip header error")
	}
}

func TestLoad_SkipsMalformedAndCountsScanned(t *testing.T) {
	path := writeCorpus(t,
		`{"text":"To be is to do","author":"Socrates","tags":["philosophy"]}`,
		`not json`,
		`{"text": 42, "author":"x"}`,
		`{"author":"missing text"}`,
		`{"text":"   ","author":"blank text"}`,
		``,
		`{"text":"Do or do not","author":"Yoda"}`,
	)

	items, total, err := Load(context.Background(), path, 100)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("accepted = %d; want 2", len(items))
	}
	// blank line is skipped before counting content but still scanned
	if total != 7 {
		t.Fatalf("scanned = %d; want 7", total)
	}
	if items[0].Text != "To be is to do" || items[1].Author != "Yoda" {
		t.Fatalf("unexpected records: %+v / %+v", items[0], items[1])
	}
}

func TestLoad_BlankAuthorBecomesUnknown(t *testing.T) {
	path := writeCorpus(t, `{"text":"No name attached","author":"   "}`)
	items, _, err := Load(context.Background(), path, 10)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(items) != 1 || items[0].Author != "Unknown" {
		t.Fatalf("expected Unknown author, got %+v", items)
	}
}

func TestLoad_DedupsByFoldedTextAndAuthor(t *testing.T) {
	path := writeCorpus(t,
		`{"text":"Know thyself","author":"Socrates"}`,
		`{"text":"KNOW THYSELF","author":"socrates"}`,
		`{"text":"Know thyself","author":"Plato"}`,
	)
	items, total, err := Load(context.Background(), path, 10)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("accepted = %d; want 2 (case-folded dup dropped)", len(items))
	}
	if total != 3 {
		t.Fatalf("scanned = %d; want 3", total)
	}
}

func TestLoad_StopsAtLimit(t *testing.T) {
	lines := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, `{"text":"quote number `+string(rune('a'+i))+`","author":"A"}`)
	}
	path := writeCorpus(t, lines...)

	items, total, err := Load(context.Background(), path, 3)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("accepted = %d; want limit 3", len(items))
	}
	if total != 3 {
		t.Fatalf("scanned = %d; want 3 (short-circuit at limit)", total)
	}
}

func TestLoad_CanceledContextReturnsPartial(t *testing.T) {
	// Enough lines to cross at least one context checkpoint.
	n := ctxCheckEvery + 10
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, `{"text": 1, "author": "skip"}`) // skipped but scanned
	}
	path := writeCorpus(t, lines...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, total, err := Load(ctx, path, n)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if total == 0 || total > ctxCheckEvery {
		t.Fatalf("scanned = %d; want abort at first checkpoint", total)
	}
}

func TestLoad_InfersTagsFromText(t *testing.T) {
	path := writeCorpus(t, `{"text":"A story of love and hope","author":"A"}`)
	items, _, err := Load(context.Background(), path, 10)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("accepted = %d; want 1", len(items))
	}
	got := items[0].Tags
	if len(got) != 2 || got[0] != "hope" || got[1] != "love" {
		t.Fatalf("tags = %#v; want [hope love]", got)
	}
}
