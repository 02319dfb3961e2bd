package http

import (
	"net/http"

	"github.com/rggevent/boardwatch/internal/config"
	"github.com/rggevent/boardwatch/internal/covers"
	"github.com/rggevent/boardwatch/internal/dashboard"
	"github.com/rggevent/boardwatch/internal/metrics"
)

type Server struct {
	Board          dashboard.Board
	Covers         covers.Finder
	Counters       metrics.MetricsStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
