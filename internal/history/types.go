package history

import "net/http"

// Defaults applied to missing record fields.
const (
	UnknownGame   = "Неизвестно"
	MissingResult = "-"
	MissingTime   = "-"
)

// Record is one day of a player's match log.
type Record struct {
	Day     int      `json:"day"`
	Game    string   `json:"game"`
	Result  string   `json:"result"`
	Time    string   `json:"time"`
	Comment string   `json:"comment"`
	Score   *float64 `json:"score,omitempty"`
}

// Map is the match history of every player, keyed by player id.
type Map map[string][]Record

// APIClient fetches match history from the history database.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}
