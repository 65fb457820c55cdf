package mysql

import (
	"context"
	"database/sql"
	"strings"

	"bank_reviews/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertRaw(ctx context.Context, rs []domain.RawReview) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*9)
	for _, rv := range rs {
		// scraped_at is set server-side; ON DUPLICATE KEY leaves it
		// untouched so re-ingests keep the first collection time.
		values = append(values, "(?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)")
		args = append(args,
			rv.ReviewID,
			rv.AppID,
			rv.BankName,
			rv.Text,
			valInt(rv.Rating),
			rv.Date,
			valStr(rv.UserName),
			valInt(rv.ThumbsUp),
			rv.Source,
		)
	}
	sqlStr := insertRawPrefix + strings.Join(values, ",") + insertRawOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// ReplaceClean swaps one app's clean rows atomically: the table carries
// overwrite semantics per run, same as the CSV destination.
func (r *Repo) ReplaceClean(ctx context.Context, appID string, rs []domain.CleanReview) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteCleanSQL, appID); err != nil {
		return err
	}
	if len(rs) > 0 {
		values := make([]string, 0, len(rs))
		args := make([]any, 0, len(rs)*5)
		for _, rv := range rs {
			values = append(values, "(?,?,?,?,?)")
			args = append(args, rv.AppID, rv.Text, rv.Rating, rv.Date, rv.TextLength)
		}
		if _, err := tx.ExecContext(ctx, insertCleanPrefix+strings.Join(values, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) LogDrops(ctx context.Context, runID string, counts map[domain.DropReason]int) error {
	for _, reason := range domain.DropReasons {
		n, ok := counts[reason]
		if !ok || n == 0 {
			continue
		}
		if _, err := r.db.ExecContext(ctx, insertDropSQL, runID, string(reason), n); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) ListClean(ctx context.Context, appID string, pg domain.PageQuery) (domain.CleanPage, error) {
	limit := pg.Limit
	if limit <= 0 {
		limit = 50
	}
	order := orderDateDesc
	if pg.Sort == domain.SortDateAsc {
		order = orderDateAsc
	}
	rows, err := r.db.QueryContext(ctx, listCleanPrefix+order+listCleanLimit, appID, limit)
	if err != nil {
		return domain.CleanPage{}, err
	}
	defer rows.Close()

	var out []domain.CleanReview
	for rows.Next() {
		var c domain.CleanReview
		if err := rows.Scan(&c.Text, &c.Rating, &c.Date, &c.AppID, &c.TextLength); err != nil {
			return domain.CleanPage{}, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return domain.CleanPage{}, err
	}
	return domain.CleanPage{Items: out}, nil
}

func (r *Repo) RatingSummary(ctx context.Context, appID string) (domain.RatingStats, error) {
	var st domain.RatingStats
	err := r.db.QueryRowContext(ctx, ratingSummarySQL, appID).Scan(&st.ReviewCount, &st.MeanRating)
	if err != nil {
		return domain.RatingStats{}, err
	}
	if st.ReviewCount == 0 {
		return st, domain.ErrNotFound
	}
	return st, nil
}
