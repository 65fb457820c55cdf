package playstore

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bank_reviews/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound     = errors.New("playstore: app not found")
	ErrUnauthorized = errors.New("playstore: unauthorized")
	ErrForbidden    = errors.New("playstore: forbidden")
)

// wire shapes

type reviewsPage struct {
	Reviews   []wireReview `json:"reviews"`
	NextToken string       `json:"next_token"`
}

type wireReview struct {
	ReviewID string  `json:"review_id"`
	Content  string  `json:"content"`
	Score    *int    `json:"score"`
	At       string  `json:"at"`
	UserName *string `json:"user_name"`
	ThumbsUp *int    `json:"thumbs_up"`
}

// Fetch pulls up to maxCount reviews for one app, following continuation
// tokens. The endpoint may return fewer rows than requested; callers must
// not assume a fixed batch size.
func (c *Client) Fetch(ctx context.Context, appID string, maxCount int) ([]domain.RawReview, error) {
	if maxCount <= 0 {
		maxCount = 100
	}
	var (
		out   []domain.RawReview
		token string
	)
	for len(out) < maxCount {
		u := fmt.Sprintf("%s/apps/%s/reviews?limit=%d", c.base, url.PathEscape(appID), maxCount-len(out))
		if token != "" {
			u += "&token=" + url.QueryEscape(token)
		}
		var page reviewsPage
		if err := c.get(ctx, u, &page); err != nil {
			return nil, err
		}
		for _, w := range page.Reviews {
			out = append(out, domain.RawReview{
				ReviewID: w.ReviewID,
				Text:     w.Content,
				Rating:   w.Score,
				Date:     w.At,
				AppID:    appID,
				UserName: w.UserName,
				ThumbsUp: w.ThumbsUp,
				Source:   domain.SourceGooglePlay,
			})
		}
		if page.NextToken == "" || len(page.Reviews) == 0 {
			break
		}
		token = page.NextToken
	}
	if len(out) > maxCount {
		out = out[:maxCount]
	}
	return out, nil
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "bank-reviews/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
