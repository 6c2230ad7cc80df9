// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires the quiz surface onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /intro", h.intro)

	// Questions
	mux.HandleFunc("GET /question/{index}", h.showQuestion)
	mux.HandleFunc("POST /question/{index}", h.answerQuestion)

	// Results
	mux.HandleFunc("GET /results", h.showResults)
}
