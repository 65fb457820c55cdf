package domain

import "context"

// ReviewSource fetches raw reviews for one app. Implementations may be
// rate-limited and may return fewer records than requested.
type ReviewSource interface {
	Fetch(ctx context.Context, appID string, maxCount int) ([]RawReview, error)
}

// ReviewRepository is the serving store for raw and clean records.
type ReviewRepository interface {
	// Write paths
	UpsertRaw(ctx context.Context, rs []RawReview) error
	ReplaceClean(ctx context.Context, appID string, rs []CleanReview) error
	LogDrops(ctx context.Context, runID string, counts map[DropReason]int) error

	// Read paths
	ListClean(ctx context.Context, appID string, pg PageQuery) (CleanPage, error)
	RatingSummary(ctx context.Context, appID string) (RatingStats, error)
}

// Cache is a JSON blob cache for query reads.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// LanguageDetector answers whether a normalized text reads as English.
// Must be a deterministic function of the text alone.
type LanguageDetector interface {
	EnglishOK(text string) bool
}

// SentimentAnalyzer scores one clean text.
type SentimentAnalyzer interface {
	Score(text string) SentimentScore
}

// Sort values accepted by ListClean. Empty means newest first.
const (
	SortDateDesc = "-review_date"
	SortDateAsc  = "review_date"
)

// PageQuery bounds a read of clean reviews.
type PageQuery struct {
	Limit int
	Sort  string
}

// CleanPage is one page of clean reviews, newest first.
type CleanPage struct {
	Items []CleanReview
}

// RatingStats is the stored aggregate for one app.
type RatingStats struct {
	ReviewCount int
	MeanRating  float64
}
