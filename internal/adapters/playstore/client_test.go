package playstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bank_reviews/internal/adapters/playstore"
)

func TestClient_Fetch_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"reviews": []map[string]any{
					{"review_id": "r1", "content": "Great app", "score": 5, "at": "2024-03-14"},
				},
			})
		}
	}))
	defer ts.Close()

	cl, err := playstore.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.Fetch(ctx, "com.example.bank", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Great app" || got[0].Rating == nil || *got[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %+v", got)
	}
	if got[0].AppID != "com.example.bank" || got[0].Source != "google_play" {
		t.Fatalf("record not tagged: %+v", got[0])
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Fetch_Pagination(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"reviews": []map[string]any{
					{"review_id": "r1", "content": "one", "score": 1, "at": "2024-01-01"},
					{"review_id": "r2", "content": "two", "score": 2, "at": "2024-01-02"},
				},
				"next_token": "page2",
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"reviews": []map[string]any{
				{"review_id": "r3", "content": "three", "score": 3, "at": "2024-01-03"},
			},
		})
	}))
	defer ts.Close()

	cl, err := playstore.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, err := cl.Fetch(context.Background(), "app", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 || got[2].ReviewID != "r3" {
		t.Fatalf("expected 3 reviews across pages, got %+v", got)
	}
}

func TestClient_Fetch_CapsAtMaxCount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"reviews": []map[string]any{
				{"review_id": "a", "content": "x", "score": 4, "at": "2024-01-01"},
				{"review_id": "b", "content": "y", "score": 4, "at": "2024-01-01"},
			},
			"next_token": "more",
		})
	}))
	defer ts.Close()

	cl, _ := playstore.New(ts.URL, 100)
	got, err := cl.Fetch(context.Background(), "app", 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected exactly 3, got %d", len(got))
	}
}

func TestClient_Fetch_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := playstore.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.Fetch(ctx, "gone", 5)
	if !errors.Is(err, playstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_New_RequiresBase(t *testing.T) {
	if _, err := playstore.New("", 5); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
