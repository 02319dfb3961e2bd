package history

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/payload"
	"github.com/tidwall/gjson"
)

// rootShapes lists the known locations of the player history list.
var rootShapes = []payload.Extractor{
	{Name: "root", Path: "", Field: "players"},
	{Name: "history", Path: "history", Field: "players"},
	{Name: "gamestate", Path: "gamestate", Field: "players"},
}

// NewClient creates a history client for the database rooted at baseURL.
func NewClient(baseURL string) Fetcher {
	return &APIClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

var _ Fetcher = (*APIClient)(nil)

// Fetch requests the whole history database and normalizes it.
func (c *APIClient) Fetch(ctx context.Context) (Map, error) {
	url := c.BaseURL + "/.json"
	body, err := payload.Get(ctx, c.httpClient, url)
	if err != nil {
		return nil, fmt.Errorf("error fetching history: %w", err)
	}
	hist, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("error parsing history: %w", err)
	}
	log.Info("Successfully fetched history", "players", len(hist))
	return hist, nil
}

// Parse normalizes a raw history document. A player without a history array
// is present with an empty list.
func Parse(body []byte) (Map, error) {
	doc, err := payload.Parse(body)
	if err != nil {
		return nil, err
	}
	match, err := payload.FirstMatch(doc, rootShapes)
	if err != nil {
		return nil, err
	}
	log.Debug("Matched history shape", "shape", match.Extractor)

	hist := make(Map)
	for _, entry := range payload.Entries(match.Collection) {
		id := entry.Key
		if rawID := entry.Value.Get("id"); payload.Present(rawID) {
			id = rawID.String()
		}

		records := []Record{}
		if h := entry.Value.Get("history"); h.IsArray() {
			for _, r := range h.Array() {
				records = append(records, normalizeRecord(r))
			}
		}
		hist[id] = records
	}
	if len(hist) == 0 {
		return nil, fmt.Errorf("parsed history is empty: %w", payload.ErrEmptyPayload)
	}
	return hist, nil
}

func normalizeRecord(r gjson.Result) Record {
	rec := Record{
		Day:     int(r.Get("day").Int()),
		Game:    payload.StringOr(r.Get("game"), UnknownGame),
		Result:  payload.StringOr(r.Get("result"), MissingResult),
		Time:    payload.StringOr(r.Get("time"), MissingTime),
		Comment: payload.StringOr(r.Get("comment"), ""),
	}
	if score := r.Get("score"); payload.Present(score) {
		v := score.Float()
		rec.Score = &v
	}
	return rec
}
