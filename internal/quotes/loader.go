package quotes

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"strings"
)

// maxLineBytes caps a single corpus line. Lines beyond this are a data error
// and abort the scan (the cache keeps whatever was read before).
const maxLineBytes = 1 << 20

// ctxCheckEvery is how many scanned lines pass between context checks.
const ctxCheckEvery = 4096

// rawQuote mirrors one corpus line. Pointer fields distinguish "absent" from
// "empty": a record is accepted only when both text and author decoded as
// JSON strings.
type rawQuote struct {
	Text   *string  `json:"text"`
	Author *string  `json:"author"`
	Tags   []string `json:"tags"`
}

// Load scans the gzip-compressed newline-delimited JSON corpus at path and
// returns up to limit accepted records plus the number of raw lines scanned.
//
// Rules:
//   - A missing file is a valid empty corpus: (nil, 0, nil).
//   - Lines that fail to parse, or lack string-typed text/author, are
//     silently skipped but still counted as scanned.
//   - Whitespace-only text is skipped; whitespace-only author becomes
//     "Unknown".
//   - Records duplicating an earlier (folded text, folded author) pair are
//     skipped.
//   - The scan short-circuits once limit records are accepted.
//
// On a mid-stream read error the records accepted so far are returned along
// with the error; callers decide whether a partial corpus is acceptable.
func Load(ctx context.Context, path string, limit int) ([]*Quote, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, 0, err
	}
	defer zr.Close()

	sc := bufio.NewScanner(zr)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	items := make([]*Quote, 0, min(limit, 4096))
	seen := make(map[string]struct{}, min(limit, 4096))
	scanned := 0

	for sc.Scan() {
		scanned++
		if scanned%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return items, scanned, err
			}
		}

		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw rawQuote
		if err := json.Unmarshal(line, &raw); err != nil {
			continue
		}
		if raw.Text == nil || raw.Author == nil {
			continue
		}

		text := strings.TrimSpace(*raw.Text)
		if text == "" {
			continue
		}
		author := strings.TrimSpace(*raw.Author)
		if author == "" {
			author = "Unknown"
		}

		q := New(text, author, Canonicalize(raw.Tags, text))
		if _, dup := seen[q.Key()]; dup {
			continue
		}
		seen[q.Key()] = struct{}{}

		items = append(items, q)
		if len(items) >= limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return items, scanned, err
	}
	return items, scanned, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
