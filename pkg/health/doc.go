// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK. [ReadinessHandler] runs a set of named
// [Checks] concurrently and answers 503 when any of them fails or times out.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "transliterator": checkTables,
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with ?format=json or an Accept: application/json header:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "transliterator": {"status": "unhealthy", "error": "unknown system"}
//	  }
//	}
package health
