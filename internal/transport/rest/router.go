// Package rest exposes the report and match operations over HTTP/JSON.
package rest

import (
	"net/http"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/dataloader"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/middleware"
)

// Routes groups the handlers and the middleware the router mounts.
type Routes struct {
	Reports *ReportHandler
	Matches *MatchHandler
	Health  *HealthHandler

	// Loaders backs the per-request report lookups of match responses.
	Loaders *dataloader.Repos

	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Writes wraps the report write endpoints, e.g. a rate limit.
	Writes []middleware.Middleware
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	writes := middleware.Chain(rt.Writes...)

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.Handle("POST /api/reports", writes(http.HandlerFunc(rt.Reports.Create)))
	mux.HandleFunc("DELETE /api/reports/{id}", rt.Reports.Delete)
	mux.Handle("POST /api/reports/{id}/matching", writes(http.HandlerFunc(rt.Reports.Match)))
	mux.HandleFunc("GET /api/reports/{id}/candidates", rt.Reports.Candidates)
	mux.HandleFunc("GET /api/reports/{id}/matches", rt.Reports.Matches)

	mux.HandleFunc("GET /api/matches", rt.Matches.List)
	mux.HandleFunc("GET /api/matches/{id}", rt.Matches.Get)
	mux.HandleFunc("PATCH /api/matches/{id}/status", rt.Matches.UpdateStatus)

	return middleware.Chain(rt.Global...)(dataloader.Middleware(rt.Loaders)(mux))
}
