package analysis

import (
	"regexp"
	"sort"

	"bank_reviews/internal/domain"
)

var tokenRe = regexp.MustCompile(`[a-z][a-z']*`)

// stopwords excluded from keyword rankings; app-review boilerplate on top
// of the usual English function words.
var stopwords = map[string]bool{
	"a": true, "about": true, "after": true, "all": true, "also": true,
	"am": true, "an": true, "and": true, "any": true, "app": true,
	"are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "for": true, "from": true,
	"get": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "his": true, "how": true, "i": true, "if": true,
	"in": true, "is": true, "it": true, "its": true, "it's": true,
	"just": true, "me": true, "my": true, "no": true, "not": true,
	"of": true, "on": true, "one": true, "or": true, "our": true,
	"out": true, "please": true, "so": true, "some": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "they": true, "this": true, "to": true, "too": true,
	"up": true, "us": true, "use": true, "very": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "which": true,
	"who": true, "will": true, "with": true, "would": true, "you": true,
	"your": true,
}

// TopKeywords ranks non-stopword tokens across the given clean texts by
// frequency. Ties break alphabetically so rankings are deterministic.
func TopKeywords(texts []string, n int) []domain.Keyword {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, t := range texts {
		for _, tok := range tokenRe.FindAllString(t, -1) {
			if len(tok) < 2 || stopwords[tok] {
				continue
			}
			counts[tok]++
		}
	}
	out := make([]domain.Keyword, 0, len(counts))
	for term, c := range counts {
		out = append(out, domain.Keyword{Term: term, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
