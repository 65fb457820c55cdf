package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bank_reviews/internal/app"
	"bank_reviews/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/banks/{appID}/reviews", h.listReviews)
	s.mux.Get("/v1/banks/{appID}/sentiment", h.getSentiment)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")
	if appID == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid app id", "appID is required")
		return
	}

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	sort := domain.SortDateDesc
	if ss := r.URL.Query().Get("sort"); ss != "" {
		if ss != domain.SortDateDesc && ss != domain.SortDateAsc {
			writeProblem(w, http.StatusBadRequest, "Invalid sort", `sort must be "review_date" or "-review_date"`)
			return
		}
		sort = ss
	}

	out, err := h.Q.ListReviews(r.Context(), appID, domain.PageQuery{Limit: limit, Sort: sort})
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "reviews not found")
		return
	}
	writeJSONWithETag(w, r, out)
}

func (h *Handlers) getSentiment(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")
	sum, err := h.Q.GetSentiment(r.Context(), appID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no clean reviews for app")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "sentiment aggregation failed")
		return
	}
	writeJSONWithETag(w, r, sum)
}
