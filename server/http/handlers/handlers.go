package handlers

import (
	"net/http"
)

// A list of HTTP endpoints.
const (
	healthPath = "/health"
	searchPath = "/search"
)

// RegisterService registers handler service.
func RegisterService(mux *http.ServeMux, s Service) {
	mux.HandleFunc(healthPath, s.Health)
	mux.HandleFunc(searchPath, s.Search)
}
