// Package analysis scores clean reviews. Sentiment delegates entirely to
// the VADER port; nothing here implements its own model.
package analysis

import (
	"github.com/jonreiter/govader"

	"bank_reviews/internal/domain"
)

// Compound-score thresholds for the categorical label, the conventional
// VADER cutoffs.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

type VaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewVader() *VaderAnalyzer {
	return &VaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (a *VaderAnalyzer) Score(text string) domain.SentimentScore {
	s := a.sia.PolarityScores(text)
	return domain.SentimentScore{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
		Label:    Label(s.Compound),
	}
}

// Label maps a compound score in [-1,1] to its categorical verdict.
func Label(compound float64) domain.SentimentLabel {
	switch {
	case compound >= positiveThreshold:
		return domain.SentimentPositive
	case compound <= negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// Summarize aggregates one app's clean reviews: mean rating, mean compound,
// label counts, and the top keyword ranking.
func Summarize(appID string, reviews []domain.CleanReview, scorer domain.SentimentAnalyzer, topN int) domain.SentimentSummary {
	sum := domain.SentimentSummary{
		AppID: appID,
		LabelCounts: map[string]int{
			string(domain.SentimentPositive): 0,
			string(domain.SentimentNeutral):  0,
			string(domain.SentimentNegative): 0,
		},
	}
	if len(reviews) == 0 {
		return sum
	}

	var ratingTotal, compoundTotal float64
	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		sc := scorer.Score(r.Text)
		ratingTotal += float64(r.Rating)
		compoundTotal += sc.Compound
		sum.LabelCounts[string(sc.Label)]++
		texts = append(texts, r.Text)
	}
	sum.ReviewCount = len(reviews)
	sum.MeanRating = ratingTotal / float64(len(reviews))
	sum.MeanCompound = compoundTotal / float64(len(reviews))
	sum.TopKeywords = TopKeywords(texts, topN)
	return sum
}
