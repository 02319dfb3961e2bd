package gamestate

import "net/http"

// Status is the board status derived from the death flag and active effects.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusStunned    Status = "STUNNED"
	StatusPoisoned   Status = "POISONED"
	StatusShielded   Status = "SHIELDED"
	StatusEliminated Status = "ELIMINATED"
)

const (
	MinPosition = 1
	MaxPosition = 100

	defaultHP       = 100
	maxLogEntries   = 5
	missingItemText = "Описание отсутствует"
)

// Effect is an active effect on a player, resolved against the glossary.
type Effect struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	IsPositive  bool   `json:"isPositive"`
	Description string `json:"description,omitempty"`
	GlossaryID  string `json:"glossaryId,omitempty"`
}

// Item is an inventory entry, resolved against the glossary.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	GlossaryID  string `json:"glossaryId,omitempty"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	IsPositive  bool   `json:"isPositive"`
	Rarity      string `json:"rarity"`
}

// Player is the normalized board state of one participant ("lite" state).
type Player struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	HP        float64  `json:"hp"`
	MaxHP     float64  `json:"maxHp"`
	IsDead    bool     `json:"isDead"`
	Status    Status   `json:"status"`
	Effects   []Effect `json:"effects"`
	Inventory []Item   `json:"inventory"`
}

// Snapshot is one parsed state response.
type Snapshot struct {
	Players []Player
	// EventLog holds at most the last five global log lines, newest first.
	// It is nil when the response carried no log.
	EventLog []string
}

// APIClient fetches the board state from the realtime database.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}
