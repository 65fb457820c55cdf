package mysql

const insertRawPrefix = `
INSERT INTO raw_reviews
  (review_id, app_id, bank_name, ` + "`text`" + `, rating, review_date, user_name, thumbs_up, source, scraped_at)
VALUES `

const insertRawOnDup = `
ON DUPLICATE KEY UPDATE
  bank_name = VALUES(bank_name),
  ` + "`text`" + ` = VALUES(` + "`text`" + `),
  rating = VALUES(rating),
  review_date = VALUES(review_date),
  user_name = VALUES(user_name),
  thumbs_up = VALUES(thumbs_up),
  source = VALUES(source)`

const deleteCleanSQL = `DELETE FROM clean_reviews WHERE app_id = ?`

const insertCleanPrefix = `
INSERT INTO clean_reviews
  (app_id, ` + "`text`" + `, rating, review_date, text_length)
VALUES `

const insertDropSQL = `
INSERT INTO drop_log (run_id, reason, dropped, logged_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)`

const listCleanPrefix = `
SELECT ` + "`text`" + `, rating, review_date, app_id, text_length
FROM clean_reviews
WHERE app_id = ?
`

// id breaks ties so pages stay stable across identical dates.
const (
	orderDateDesc = `ORDER BY review_date DESC, id DESC`
	orderDateAsc  = `ORDER BY review_date ASC, id ASC`
)

const listCleanLimit = `
LIMIT ?`

const ratingSummarySQL = `
SELECT COUNT(*), COALESCE(AVG(rating), 0)
FROM clean_reviews
WHERE app_id = ?`
