package translit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/translit/pkg/cyrillic"
	"github.com/dmitrymomot/translit/pkg/health"
	"github.com/dmitrymomot/translit/pkg/urlsegment"
)

const maxBodyBytes = 1 << 20 // 1MB

type asciiResponse struct {
	System string `json:"system"`
	Source string `json:"source"`
	ASCII  string `json:"ascii"`
}

type segmentRequest struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	System string `json:"system,omitempty"`
}

type segmentResponse struct {
	ID      int64  `json:"id"`
	Segment string `json:"segment"`
}

type systemInfo struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

type systemsResponse struct {
	Default string       `json:"default"`
	Systems []systemInfo `json:"systems"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}

	a.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound)})
	})
	a.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
	})

	a.router.Get("/health/live", health.LivenessHandler())
	a.router.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"transliterator": a.checkTransliterator,
	}, health.WithLogger(a.logger)))

	a.router.Route("/v1", func(r chi.Router) {
		r.Get("/ascii", a.handleASCII)
		r.Post("/segments", a.handleSegment)
		r.Get("/systems", a.handleSystems)
	})
}

// resolve picks the transliterator for an explicit system name, or the
// configured one when name is empty.
func (a *App) resolve(name string) (*cyrillic.Transliterator, error) {
	if name == "" {
		return a.translit, nil
	}
	s, err := cyrillic.ParseSystem(name)
	if err != nil {
		return nil, err
	}
	return a.bySystem[s], nil
}

func (a *App) handleASCII(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tr, err := a.resolve(q.Get("system"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	source := q.Get("text")
	writeJSON(w, http.StatusOK, asciiResponse{
		System: tr.System().String(),
		Source: source,
		ASCII:  tr.ToASCII(source),
	})
}

func (a *App) handleSegment(w http.ResponseWriter, r *http.Request) {
	var req segmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		a.logger.DebugContext(r.Context(), "bad segment request", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errors.Join(ErrInvalidJSON, err).Error()})
		return
	}

	tr, err := a.resolve(req.System)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	gen := urlsegment.New(tr, urlsegment.WithLogger(a.logger))
	writeJSON(w, http.StatusOK, segmentResponse{
		ID:      req.ID,
		Segment: gen.Generate(r.Context(), req.ID, req.Title),
	})
}

func (a *App) handleSystems(w http.ResponseWriter, _ *http.Request) {
	systems := cyrillic.Systems()
	resp := systemsResponse{
		Default: a.translit.System().String(),
		Systems: make([]systemInfo, 0, len(systems)),
	}
	for _, s := range systems {
		resp.Systems = append(resp.Systems, systemInfo{
			Name:    s.String(),
			Default: s == a.translit.System(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// checkTransliterator fails readiness when the configured system has no
// table, since every conversion would then return its input unchanged.
func (a *App) checkTransliterator(context.Context) error {
	if !a.translit.System().Valid() {
		return fmt.Errorf("%w: %q converts text unchanged", cyrillic.ErrUnknownSystem, a.translit.System().String())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
