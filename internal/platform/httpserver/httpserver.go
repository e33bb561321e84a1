package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with the timeouts every panel listener uses.
// WriteTimeout leaves room for a full daemon round trip inside a request.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
