package reconcile

import (
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
)

// Stats are aggregates derived from a player's match history.
type Stats struct {
	GamesPlayed int `json:"gamesPlayed"`
	Wins        int `json:"wins"`
	Drops       int `json:"drops"`
	Rerolls     int `json:"rerolls"`
	// MovesCount is reserved and always zero.
	MovesCount int `json:"movesCount"`
}

// MergedPlayer is the view model served to the presentation layer.
type MergedPlayer struct {
	gamestate.Player

	AvatarURL      string           `json:"avatarUrl"`
	Color          string           `json:"color"`
	History        []history.Record `json:"history"`
	IsLive         bool             `json:"isLive"`
	TwitchUsername string           `json:"twitchUsername,omitempty"`
	TwitchCategory string           `json:"twitchCategory,omitempty"`
	Stats          Stats            `json:"stats"`
}
