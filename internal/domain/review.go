package domain

// SourceGooglePlay tags every record collected from the Play Store.
const SourceGooglePlay = "google_play"

// RawReview is one scraped record, persisted unmodified. Optional fields
// are pointers so "missing" and "zero" stay distinguishable downstream.
type RawReview struct {
	ReviewID string
	Text     string
	Rating   *int
	Date     string // loosely formatted, normalized by the preprocessor
	AppID    string
	BankName string
	UserName *string
	ThumbsUp *int
	Source   string
}

// CleanReview is the analysis-ready record. Created once per surviving
// RawReview and never mutated afterwards.
type CleanReview struct {
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	Date       string `json:"date"` // YYYY-MM-DD
	AppID      string `json:"app_id"`
	TextLength int    `json:"text_length"`
}

// DropReason classifies why a raw row was excluded from the clean table.
type DropReason string

const (
	DropMissingField DropReason = "missing_field"
	DropNonEnglish   DropReason = "non_english"
	DropBadDate      DropReason = "bad_date"
	DropBadRating    DropReason = "bad_rating"
	DropDuplicate    DropReason = "duplicate"
)

// DropReasons lists every reason in report order.
var DropReasons = []DropReason{
	DropMissingField,
	DropNonEnglish,
	DropBadDate,
	DropBadRating,
	DropDuplicate,
}

// SentimentLabel is the categorical VADER verdict.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentScore is a per-review VADER result.
type SentimentScore struct {
	Compound float64        `json:"compound"` // [-1,1]
	Positive float64        `json:"positive"`
	Neutral  float64        `json:"neutral"`
	Negative float64        `json:"negative"`
	Label    SentimentLabel `json:"label"`
}

// SentimentSummary aggregates one app's clean reviews.
type SentimentSummary struct {
	AppID         string         `json:"app_id"`
	ReviewCount   int            `json:"review_count"`
	MeanRating    float64        `json:"mean_rating"`
	MeanCompound  float64        `json:"mean_compound"`
	LabelCounts   map[string]int `json:"label_counts"`
	TopKeywords   []Keyword      `json:"top_keywords,omitempty"`
	GeneratedDate string         `json:"generated_date,omitempty"`
}

// Keyword is one ranked term from the clean text corpus.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}
