// Package preprocess turns scraped review rows into the analysis-ready
// clean table: validate, normalize, filter, derive. Rows are independent;
// a bad row is dropped and tallied, never aborts the run.
package preprocess

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bank_reviews/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type Preprocessor struct {
	lang domain.LanguageDetector
}

func New(lang domain.LanguageDetector) *Preprocessor {
	return &Preprocessor{lang: lang}
}

// Run applies the cleaning rules to each row in order and returns the
// surviving rows (input order preserved) plus per-reason drop counts.
func (p *Preprocessor) Run(raw []domain.RawReview) ([]domain.CleanReview, Report) {
	rep := NewReport(len(raw))
	out := make([]domain.CleanReview, 0, len(raw))
	seen := make(map[dedupKey]bool, len(raw))

	for _, r := range raw {
		// 1. missing critical fields
		if strings.TrimSpace(r.Text) == "" || r.Rating == nil {
			rep.Drop(domain.DropMissingField)
			continue
		}

		// 2. text normalization
		text := NormalizeText(r.Text)

		// 3. language gate
		if !p.lang.EnglishOK(text) {
			rep.Drop(domain.DropNonEnglish)
			continue
		}

		// 4. date normalization
		date, ok := normalizeDate(r.Date)
		if !ok {
			rep.Drop(domain.DropBadDate)
			continue
		}

		// 5. rating bounds
		if *r.Rating < 1 || *r.Rating > 5 {
			rep.Drop(domain.DropBadRating)
			continue
		}

		// 6. exact duplicates within the run
		key := dedupKey{appID: r.AppID, date: date, text: text}
		if seen[key] {
			rep.Drop(domain.DropDuplicate)
			continue
		}
		seen[key] = true

		out = append(out, domain.CleanReview{
			Text:       text,
			Rating:     *r.Rating,
			Date:       date,
			AppID:      r.AppID,
			TextLength: utf8.RuneCountInString(text),
		})
		rep.Emit()
	}
	return out, rep
}

// NormalizeText lowercases, collapses whitespace runs to a single space,
// and trims.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

type dedupKey struct {
	appID string
	date  string
	text  string
}
