package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler always responds OK while the process is running.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and responds 503 if any fails.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := Run(r.Context(), checks, opts...)

		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		respond(w, r, status, resp)
	}
}

// respond writes JSON when the client asks for it (?format=json or an
// Accept header containing application/json) and plain text otherwise.
func respond(w http.ResponseWriter, r *http.Request, status int, resp *Response) {
	if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}
