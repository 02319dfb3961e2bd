package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/glossary"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListPlayersHandler serves the merged view. An empty list means no data has
// arrived yet.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Board.Players())
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		player, ok := s.Board.Player(id)
		if !ok {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, player)
	}
}

func (s *Server) GameStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Board.GameState())
	}
}

// GlossaryHandler lists glossary entries, optionally filtered by category.
// With q it returns the single best match or 404.
func (s *Server) GlossaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "" {
			entry, ok := glossary.Lookup(q)
			if !ok {
				http.Error(w, "No glossary entry matches", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, entry)
			return
		}

		entries := glossary.All()
		if c := r.URL.Query().Get("category"); c != "" {
			entries = glossary.ByCategory(glossary.Category(c))
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// CoverHandler resolves a game cover. Upstream failures are reported as a miss
// so the presentation layer never sees an error.
func (s *Server) CoverHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.URL.Query().Get("game")
		if game == "" {
			http.Error(w, "Missing 'game' parameter", http.StatusBadRequest)
			return
		}
		if s.Covers == nil {
			http.Error(w, "Cover lookup is not configured", http.StatusServiceUnavailable)
			return
		}
		res, err := s.Covers.Lookup(r.Context(), game)
		if err != nil {
			log.Warn("Cover lookup failed, reporting a miss", "game", game, "error", err)
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// RefreshHandler polls every source once and reports the outcome.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Manual refresh requested")
		report := s.Board.RefreshAll(r.Context())
		log.Info("Manual refresh finished", "state", report.State, "history", report.History, "live", report.Live)
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) CountersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.Counters.GetAll()
		if err != nil {
			http.Error(w, "Failed to get counters", http.StatusInternalServerError)
			log.Error("Failed to get counters from store", "error", err)
			return
		}
		writeJSON(w, http.StatusOK, counters)
	}
}
