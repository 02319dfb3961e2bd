package http

import (
	"net/http"

	"github.com/rggevent/boardwatch/internal/config"
	"github.com/rggevent/boardwatch/internal/covers"
	"github.com/rggevent/boardwatch/internal/dashboard"
	"github.com/rggevent/boardwatch/internal/metrics"
)

// NewServer builds the API. coverFinder may be nil when no cover API key is
// configured.
func NewServer(board dashboard.Board, coverFinder covers.Finder, counters metrics.MetricsStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Board:          board,
		Covers:         coverFinder,
		Counters:       counters,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), requestIDMiddleware, paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(s.GetPlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /gamestate", Chain(s.GameStateHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /glossary", Chain(s.GlossaryHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /covers", Chain(s.CoverHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /refresh", Chain(s.RefreshHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /counters", Chain(s.CountersHandler(), requestIDMiddleware, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
