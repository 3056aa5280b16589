package http

import (
	stdhttp "net/http"
)

// HealthHandler is the liveness probe. It answers before any dependency is
// consulted, so a degraded database never takes the process out of rotation.
func HealthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
