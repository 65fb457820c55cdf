package app

import (
	"context"
	"fmt"
	"time"

	"bank_reviews/internal/analysis"
	"bank_reviews/internal/domain"
)

// sentimentSampleSize caps how many recent reviews feed a summary.
const sentimentSampleSize = 1000

type QueryService struct {
	repo     domain.ReviewRepository
	cache    domain.Cache
	scorer   domain.SentimentAnalyzer
	cacheTTL time.Duration
}

func NewQueryService(r domain.ReviewRepository, c domain.Cache, scorer domain.SentimentAnalyzer, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, scorer: scorer, cacheTTL: ttl}
}

func (s *QueryService) ListReviews(ctx context.Context, appID string, pg domain.PageQuery) (domain.CleanPage, error) {
	sort := pg.Sort
	if sort == "" {
		sort = domain.SortDateDesc
	}
	key := fmt.Sprintf("reviews:%s:%d:%s", appID, pg.Limit, sort)
	var out domain.CleanPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	page, err := s.repo.ListClean(ctx, appID, pg)
	if err != nil {
		return domain.CleanPage{}, err
	}

	// copy slice to avoid aliasing the repo's backing array
	cp := deepCopyCleanPage(page)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return cp, nil
}

// GetSentiment aggregates VADER scores and keywords over an app's recent
// clean reviews, serving from cache when fresh.
func (s *QueryService) GetSentiment(ctx context.Context, appID string) (domain.SentimentSummary, error) {
	key := "sentiment:" + appID
	var sum domain.SentimentSummary
	if ok, _ := s.cache.Get(ctx, key, &sum); ok {
		return sum, nil
	}

	page, err := s.repo.ListClean(ctx, appID, domain.PageQuery{Limit: sentimentSampleSize})
	if err != nil {
		return domain.SentimentSummary{}, err
	}
	if len(page.Items) == 0 {
		return domain.SentimentSummary{}, domain.ErrNotFound
	}

	sum = analysis.Summarize(appID, page.Items, s.scorer, 10)
	sum.GeneratedDate = time.Now().UTC().Format("2006-01-02")
	_ = s.cache.Set(ctx, key, sum, int(s.cacheTTL.Seconds()))
	return sum, nil
}

func deepCopyCleanPage(in domain.CleanPage) domain.CleanPage {
	var out domain.CleanPage
	if n := len(in.Items); n > 0 {
		out.Items = make([]domain.CleanReview, n)
		copy(out.Items, in.Items)
	}
	return out
}
