package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"bank_reviews/internal/domain"
)

// Fixed clean-table column order; consumers index by name but the file
// layout never changes between runs.
var cleanHeader = []string{"text", "rating", "date", "app_id", "text_length"}

// WriteClean overwrites the destination with the clean table. The write
// goes to a temp file in the same directory and is renamed over the
// target, so a failed run never leaves a half-written table.
func WriteClean(path string, rs []domain.CleanReview) error {
	return writeFile(path, cleanHeader, func(w *csv.Writer) error {
		for _, r := range rs {
			rec := []string{
				r.Text,
				strconv.Itoa(r.Rating),
				r.Date,
				r.AppID,
				strconv.Itoa(r.TextLength),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadClean loads a clean table, validating the invariants the writer
// guarantees. Used by the analyzer and the tests.
func ReadClean(path string) ([]domain.CleanReview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clean table: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(cleanHeader)

	hdr, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read clean header: %w", err)
	}
	if !headerMatches(hdr, cleanHeader) {
		return nil, fmt.Errorf("clean file %s: unexpected header %v", path, hdr)
	}

	var out []domain.CleanReview
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read clean row: %w", err)
		}
		rating, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("clean row rating %q: %w", rec[1], err)
		}
		length, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("clean row text_length %q: %w", rec[4], err)
		}
		out = append(out, domain.CleanReview{
			Text:       rec[0],
			Rating:     rating,
			Date:       rec[2],
			AppID:      rec[3],
			TextLength: length,
		})
	}
	return out, nil
}

// writeFile writes header+rows to a temp file and renames it into place.
func writeFile(path string, header []string, write func(*csv.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := write(w); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
