// Package middlewares provides net/http middleware for the transliteration
// service. Every constructor returns func(http.Handler) http.Handler, so the
// middlewares plug straight into chi:
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Logger(log),
//	    middlewares.Recover(log),
//	    middlewares.Timeout(10*time.Second, log),
//	)
//
// # Request ID
//
// RequestID reuses an incoming X-Request-ID (or X-Correlation-ID) header or
// generates a UUID, stores it in the request context and echoes it back.
// Pair it with RequestIDExtractor so every log entry carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover logs the panic value and stack, then answers 500 with
// {"error":"Internal Server Error"}.
//
// # Timeout
//
// Timeout bounds the request context. Handlers that overrun without writing
// anything get a 503 {"error":"request timeout"} response.
//
// # Logger
//
// Logger writes a structured access log entry per request.
package middlewares
