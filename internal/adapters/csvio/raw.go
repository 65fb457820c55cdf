// Package csvio reads and writes the pipeline's tabular interchange files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bank_reviews/internal/domain"
)

var rawHeader = []string{
	"review_id", "text", "rating", "date", "app_id", "bank_name", "user_name", "thumbs_up", "source",
}

// RawPath returns the fixed per-app raw file location under dir.
func RawPath(dir, appID string) string {
	return filepath.Join(dir, appID+".csv")
}

// WriteRaw persists scraped records unmodified, one file per app.
func WriteRaw(path string, rs []domain.RawReview) error {
	return writeFile(path, rawHeader, func(w *csv.Writer) error {
		for _, r := range rs {
			rec := []string{
				r.ReviewID,
				r.Text,
				intField(r.Rating),
				r.Date,
				r.AppID,
				r.BankName,
				strField(r.UserName),
				intField(r.ThumbsUp),
				r.Source,
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadRaw loads one app's raw table. Unreadable files and malformed CSV are
// run-level errors; loosely-typed field contents (missing ratings, odd
// dates) are passed through for the preprocessor to judge.
func ReadRaw(path string) ([]domain.RawReview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw source: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(rawHeader)

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read raw header: %w", err)
	}
	if !headerMatches(hdr, rawHeader) {
		return nil, fmt.Errorf("raw file %s: unexpected header %v", path, hdr)
	}

	var out []domain.RawReview
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read raw row: %w", err)
		}
		out = append(out, domain.RawReview{
			ReviewID: rec[0],
			Text:     rec[1],
			Rating:   parseOptInt(rec[2]),
			Date:     rec[3],
			AppID:    rec[4],
			BankName: rec[5],
			UserName: parseOptStr(rec[6]),
			ThumbsUp: parseOptInt(rec[7]),
			Source:   rec[8],
		})
	}
	return out, nil
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}

func parseOptInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// pandas-style NaN/float ratings land here; treat as missing
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			v := int(f)
			return &v
		}
		return nil
	}
	return &n
}

func parseOptStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intField(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func strField(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
