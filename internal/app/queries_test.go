package app_test

import (
	"context"
	"testing"
	"time"

	"bank_reviews/internal/app"
	"bank_reviews/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	clean    map[string][]domain.CleanReview
	replaced map[string][]domain.CleanReview
	drops    map[domain.DropReason]int
	rawRows  []domain.RawReview
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clean:    map[string][]domain.CleanReview{},
		replaced: map[string][]domain.CleanReview{},
	}
}

func (f *fakeRepo) UpsertRaw(ctx context.Context, rs []domain.RawReview) error {
	f.rawRows = append(f.rawRows, rs...)
	return nil
}
func (f *fakeRepo) ReplaceClean(ctx context.Context, appID string, rs []domain.CleanReview) error {
	f.replaced[appID] = rs
	return nil
}
func (f *fakeRepo) LogDrops(ctx context.Context, runID string, counts map[domain.DropReason]int) error {
	f.drops = counts
	return nil
}
func (f *fakeRepo) ListClean(ctx context.Context, appID string, pg domain.PageQuery) (domain.CleanPage, error) {
	return domain.CleanPage{Items: f.clean[appID]}, nil
}
func (f *fakeRepo) RatingSummary(ctx context.Context, appID string) (domain.RatingStats, error) {
	rows := f.clean[appID]
	if len(rows) == 0 {
		return domain.RatingStats{}, domain.ErrNotFound
	}
	return domain.RatingStats{ReviewCount: len(rows)}, nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.CleanPage:
		*d = v.(domain.CleanPage)
	case *domain.SentimentSummary:
		*d = v.(domain.SentimentSummary)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

type stubScorer struct{ compound float64 }

func (s stubScorer) Score(text string) domain.SentimentScore {
	label := domain.SentimentNeutral
	if s.compound >= 0.05 {
		label = domain.SentimentPositive
	}
	return domain.SentimentScore{Compound: s.compound, Label: label}
}

// ---- tests ----

func TestListReviews_CacheMissThenHit(t *testing.T) {
	repo := newFakeRepo()
	repo.clean["cbe"] = []domain.CleanReview{
		{Text: "great app!!", Rating: 5, Date: "2024-03-14", AppID: "cbe", TextLength: 11},
	}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, stubScorer{0.5}, 10*time.Minute)

	// Miss (first time, populates cache)
	page, err := q.ListReviews(context.Background(), "cbe", domain.PageQuery{Limit: 50})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Text != "great app!!" {
		t.Fatalf("unexpected page: %+v", page)
	}

	// Mutate repo to ensure second read indeed comes from cache
	repo.clean["cbe"][0].Text = "SHOULD NOT SEE THIS"

	page2, err := q.ListReviews(context.Background(), "cbe", domain.PageQuery{Limit: 50})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page2.Items[0].Text != "great app!!" {
		t.Fatalf("expected cached text, got %s", page2.Items[0].Text)
	}
}

func TestGetSentiment(t *testing.T) {
	repo := newFakeRepo()
	repo.clean["cbe"] = []domain.CleanReview{
		{Text: "love the new transfer screen", Rating: 5, AppID: "cbe"},
		{Text: "transfer failed twice", Rating: 2, AppID: "cbe"},
	}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, stubScorer{0.5}, time.Minute)

	sum, err := q.GetSentiment(context.Background(), "cbe")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if sum.AppID != "cbe" || sum.ReviewCount != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.MeanRating != 3.5 {
		t.Fatalf("mean rating: %v", sum.MeanRating)
	}
	if sum.LabelCounts["positive"] != 2 {
		t.Fatalf("label counts: %+v", sum.LabelCounts)
	}
	if len(sum.TopKeywords) == 0 || sum.TopKeywords[0].Term != "transfer" {
		t.Fatalf("keywords: %+v", sum.TopKeywords)
	}

	// cached on second call even if the repo changes
	repo.clean["cbe"] = nil
	sum2, err := q.GetSentiment(context.Background(), "cbe")
	if err != nil || sum2.ReviewCount != 2 {
		t.Fatalf("expected cached summary, got %+v err=%v", sum2, err)
	}
}

func TestGetSentiment_Unknown(t *testing.T) {
	q := app.NewQueryService(newFakeRepo(), &fakeCache{}, stubScorer{0}, time.Minute)
	if _, err := q.GetSentiment(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for app with no reviews")
	}
}
