package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bank_reviews/internal/adapters/csvio"
	"bank_reviews/internal/adapters/observability"
	"bank_reviews/internal/domain"
	"bank_reviews/internal/preprocess"
	"bank_reviews/internal/shared"
)

// CollectService pulls raw reviews from the Play source and persists them
// unmodified: one CSV per app, plus the raw table when a repo is wired.
type CollectService struct {
	source domain.ReviewSource
	repo   domain.ReviewRepository // optional
	rawDir string
}

func NewCollectService(src domain.ReviewSource, repo domain.ReviewRepository, rawDir string) *CollectService {
	return &CollectService{source: src, repo: repo, rawDir: rawDir}
}

// CollectApp fetches up to maxCount reviews for one bank. The source may
// return fewer rows than requested; whatever arrives is persisted.
func (s *CollectService) CollectApp(ctx context.Context, bank shared.Bank, maxCount int) (int, error) {
	if bank.MaxReviews > 0 {
		maxCount = bank.MaxReviews
	}
	revs, err := s.source.Fetch(ctx, bank.AppID, maxCount)
	observability.ObserveScrape(bank.AppID, len(revs), err)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", bank.AppID, err)
	}
	for i := range revs {
		revs[i].BankName = bank.Name
	}

	if err := csvio.WriteRaw(csvio.RawPath(s.rawDir, bank.AppID), revs); err != nil {
		return 0, fmt.Errorf("persist raw %s: %w", bank.AppID, err)
	}
	if s.repo != nil && len(revs) > 0 {
		if err := s.repo.UpsertRaw(ctx, revs); err != nil {
			return 0, fmt.Errorf("upsert raw %s: %w", bank.AppID, err)
		}
	}
	return len(revs), nil
}

// PreprocessService runs the cleaning pipeline over collected raw files
// and writes the clean table.
type PreprocessService struct {
	pre   *preprocess.Preprocessor
	repo  domain.ReviewRepository // optional
	cache domain.Cache            // optional
}

func NewPreprocessService(p *preprocess.Preprocessor, repo domain.ReviewRepository, cache domain.Cache) *PreprocessService {
	return &PreprocessService{pre: p, repo: repo, cache: cache}
}

// Run reads the raw table for each app (in the given order), cleans the
// rows, and overwrites the clean destination. Row-level problems are
// tallied in the report; only I/O failures abort.
func (s *PreprocessService) Run(ctx context.Context, rawDir string, appIDs []string, outPath string) (preprocess.Report, error) {
	if len(appIDs) == 0 {
		return preprocess.Report{}, errors.New("no app ids given")
	}

	var raw []domain.RawReview
	for _, id := range appIDs {
		rows, err := csvio.ReadRaw(csvio.RawPath(rawDir, id))
		if err != nil {
			return preprocess.Report{}, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
		}
		raw = append(raw, rows...)
	}

	clean, rep := s.pre.Run(raw)

	if err := csvio.WriteClean(outPath, clean); err != nil {
		return rep, fmt.Errorf("write clean table: %w", err)
	}

	observability.ObservePipelineRows("emitted", rep.Emitted)
	for reason, n := range rep.Drops {
		observability.ObservePipelineRows(string(reason), n)
	}

	if s.repo != nil {
		runID := time.Now().UTC().Format("20060102T150405Z")
		byApp := make(map[string][]domain.CleanReview, len(appIDs))
		for _, c := range clean {
			byApp[c.AppID] = append(byApp[c.AppID], c)
		}
		for _, id := range appIDs {
			if err := s.repo.ReplaceClean(ctx, id, byApp[id]); err != nil {
				return rep, fmt.Errorf("replace clean %s: %w", id, err)
			}
			s.invalidateApp(ctx, id)
		}
		if err := s.repo.LogDrops(ctx, runID, rep.Drops); err != nil {
			log.Warn().Err(err).Msg("drop log write failed")
		}
	}
	return rep, nil
}

// invalidate the common cached read variants for one app
func (s *PreprocessService) invalidateApp(ctx context.Context, appID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, "sentiment:"+appID)
	for _, lim := range []int{50, 100, 200} {
		for _, sort := range []string{domain.SortDateDesc, domain.SortDateAsc} {
			_ = s.cache.Del(ctx, fmt.Sprintf("reviews:%s:%d:%s", appID, lim, sort))
		}
	}
}
