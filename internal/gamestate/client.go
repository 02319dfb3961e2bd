package gamestate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/payload"
)

// rootShapes lists the wrappers the state export has been seen in, in the
// order they are tried.
var rootShapes = []payload.Extractor{
	{Name: "gamestate", Path: "gamestate", Field: "players"},
	{Name: "root", Path: "", Field: "players"},
	{Name: "data.gamestate", Path: "data.gamestate", Field: "players"},
	{Name: "data", Path: "data", Field: "players"},
}

// NewClient creates a state client for the database rooted at baseURL.
func NewClient(baseURL string) Fetcher {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Ensure APIClient implements the Fetcher interface.
var _ Fetcher = (*APIClient)(nil)

// Fetch requests gamestate.json and normalizes it. On ErrEmptyPayload the
// returned snapshot may still carry the event log of the response.
func (c *APIClient) Fetch(ctx context.Context) (Snapshot, error) {
	url := c.BaseURL + "/gamestate.json"
	body, err := payload.Get(ctx, c.httpClient, url)
	if err != nil {
		return Snapshot{}, fmt.Errorf("error fetching game state: %w", err)
	}
	snap, err := Parse(body)
	if err != nil {
		return snap, fmt.Errorf("error parsing game state: %w", err)
	}
	log.Info("Successfully fetched game state", "players", len(snap.Players), "log_entries", len(snap.EventLog))
	return snap, nil
}

// Parse normalizes a raw state document.
func Parse(body []byte) (Snapshot, error) {
	doc, err := payload.Parse(body)
	if err != nil {
		return Snapshot{}, err
	}
	match, err := payload.FirstMatch(doc, rootShapes)
	if err != nil {
		return Snapshot{}, err
	}
	log.Debug("Matched game state shape", "shape", match.Extractor)

	snap := Snapshot{EventLog: lastEvents(match.Root)}
	for _, entry := range payload.Entries(match.Collection) {
		snap.Players = append(snap.Players, normalizePlayer(entry.Key, entry.Value))
	}
	if len(snap.Players) == 0 {
		return snap, fmt.Errorf("parsed players list is empty: %w", payload.ErrEmptyPayload)
	}
	return snap, nil
}
