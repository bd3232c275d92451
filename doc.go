// Package translit serves Cyrillic to ASCII transliteration over HTTP.
//
// The conversion itself lives in pkg/cyrillic; this package wires it into a
// chi router with graceful shutdown, health probes and URL segment
// generation.
//
// # Quick Start
//
//	cfg := config.MustLoad("")
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
//	app := translit.New(
//	    translit.WithLogger(log),
//	    translit.WithAddress(cfg.Server.Address),
//	    translit.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
//	    translit.WithTransliterator(cfg.Translit),
//	    translit.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Logger(log),
//	        middlewares.Recover(log),
//	    ),
//	)
//
//	if err := app.Run(); err != nil {
//	    log.Error("server failed", "error", err)
//	}
//
// # Routes
//
//	GET  /v1/ascii?text=Привет&system=iso9  {"system":"iso9","source":"Привет","ascii":"Privet"}
//	POST /v1/segments {"id":7,"title":"Новости"}  {"id":7,"segment":"novosti"}
//	GET  /v1/systems                        {"default":"passport2013","systems":[...]}
//	GET  /health/live
//	GET  /health/ready
//
// An explicit system parameter must name a known system; otherwise the
// request fails with 400. The configured default is never rejected: an
// unknown default converts text unchanged and reports itself through the
// readiness probe.
//
// # Graceful Shutdown
//
// Run blocks until SIGINT, SIGTERM, or Stop. In-flight requests get the
// shutdown timeout to finish, then shutdown hooks run in order.
package translit
