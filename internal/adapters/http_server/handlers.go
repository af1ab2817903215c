// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_search/internal/app"
	"hotel_search/internal/domain"
)

type Handlers struct{ Views *app.ViewService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/views", h.openView)
	s.mux.Get("/v1/views/{id}", h.getView)
	s.mux.Post("/v1/views/{id}/filter", h.setFilter)
	s.mux.Delete("/v1/views/{id}", h.closeView)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

func (h *Handlers) view(w http.ResponseWriter, r *http.Request) (*app.View, bool) {
	v, err := h.Views.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "view not found")
			return nil, false
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return nil, false
	}
	return v, true
}

func (h *Handlers) openView(w http.ResponseWriter, r *http.Request) {
	v := h.Views.Open()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/v1/views/"+v.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"id": v.ID}); err != nil {
		log.Error().Err(err).Msg("failed to write openView body")
	}
}

func (h *Handlers) getView(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	h.render(w, r, v)
}

// setFilter applies the rating, adults and children fields present in the
// form (query string or urlencoded body), in that order. Unparseable values
// are kept as invalid inputs; valid ones are clamped to the control bounds.
func (h *Handlers) setFilter(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid form", err.Error())
		return
	}
	field := func(name string, min, max int) *domain.IntInput {
		if _, present := r.Form[name]; !present {
			return nil
		}
		in := domain.ParseIntInput(r.Form.Get(name)).Clamp(min, max)
		return &in
	}
	v.ApplyFilter(app.FilterEdits{
		Rating:   field("rating", domain.MinRating, domain.MaxRating),
		Adults:   field("adults", domain.MinAdults, domain.MaxAdults),
		Children: field("children", domain.MinChildren, domain.MaxChildren),
	})
	h.render(w, r, v)
}

func (h *Handlers) closeView(w http.ResponseWriter, r *http.Request) {
	if err := h.Views.Close(chi.URLParam(r, "id")); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "view not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, v *app.View) {
	etag, body, err := calcETagAndBody(v.Render())
	if err != nil {
		log.Error().Err(err).Str("view", v.ID).Msg("failed to marshal view")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write view body")
	}
}
