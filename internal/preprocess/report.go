package preprocess

import (
	"github.com/rs/zerolog"

	"bank_reviews/internal/domain"
)

// Report tallies one preprocessing run. Mirrors the per-reason taxonomy:
// row-level problems are counts, not errors.
type Report struct {
	Input   int
	Emitted int
	Drops   map[domain.DropReason]int
}

func NewReport(input int) Report {
	return Report{Input: input, Drops: make(map[domain.DropReason]int)}
}

func (r *Report) Drop(reason domain.DropReason) { r.Drops[reason]++ }
func (r *Report) Emit()                         { r.Emitted++ }

// Dropped is the total rows excluded for any reason.
func (r Report) Dropped() int {
	n := 0
	for _, c := range r.Drops {
		n += c
	}
	return n
}

// Retention is the fraction of input rows that survived, in [0,1].
func (r Report) Retention() float64 {
	if r.Input == 0 {
		return 0
	}
	return float64(r.Emitted) / float64(r.Input)
}

// Log writes the run summary in report order.
func (r Report) Log(l zerolog.Logger) {
	ev := l.Info().
		Int("input", r.Input).
		Int("emitted", r.Emitted).
		Int("dropped", r.Dropped()).
		Float64("retention", r.Retention())
	for _, reason := range domain.DropReasons {
		if c := r.Drops[reason]; c > 0 {
			ev = ev.Int("drop_"+string(reason), c)
		}
	}
	ev.Msg("preprocessing report")
}

// Merge folds another run's tallies into this one (multi-app runs).
func (r *Report) Merge(o Report) {
	r.Input += o.Input
	r.Emitted += o.Emitted
	for reason, c := range o.Drops {
		r.Drops[reason] += c
	}
}
