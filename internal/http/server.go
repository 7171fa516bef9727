// Package http exposes the bill store and reports over a small JSON API.
// Any presentation client (mobile shell, CLI, browser) drives the store
// exclusively through these endpoints.
package http

import (
	"net/http"
	"time"

	"billtrack/internal/bills"
	"billtrack/internal/cache"
	"billtrack/internal/core"
	"billtrack/internal/report"
)

const (
	reportCacheKey    = "report"
	dashboardCacheKey = "dashboard"
)

type Server struct {
	http.Server
	store *bills.Store

	// Derived payload caches, dropped whenever the store publishes.
	reportCache    *cache.LRUCache[report.Report]
	dashboardCache *cache.LRUCache[dashboardResponse]

	// now is injectable for dashboard dueness tests.
	now func() time.Time
}

// NewServer wires routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, store *bills.Store) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:          store,
		reportCache:    cache.NewLRUCache[report.Report](4, 30*time.Second),
		dashboardCache: cache.NewLRUCache[dashboardResponse](4, 30*time.Second),
		now:            time.Now,
	}

	// Every publish invalidates the derived payloads.
	store.Subscribe(func([]core.Bill) {
		s.reportCache.Delete(reportCacheKey)
		s.dashboardCache.Delete(dashboardCacheKey)
	})

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /bills", withRequestLogging(s.handleCreateBill))
	mux.HandleFunc("GET /bills", withRequestLogging(s.handleListBills))
	mux.HandleFunc("POST /bills/{id}/toggle", withRequestLogging(s.handleToggleBill))
	mux.HandleFunc("DELETE /bills/{id}", withRequestLogging(s.handleDeleteBill))
	mux.HandleFunc("GET /reports", withRequestLogging(s.handleReports))
	mux.HandleFunc("GET /dashboard", withRequestLogging(s.handleDashboard))

	return s
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
