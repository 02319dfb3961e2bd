package reconcile

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
	"github.com/rggevent/boardwatch/internal/twitch"
)

// adminName is the operator account present in the board export.
const adminName = "admin"

// IsAdmin reports whether name is the operator account, in any casing.
func IsAdmin(name string) bool {
	return strings.EqualFold(name, adminName)
}

// Merge combines the three state pieces into the ordered view model. It is a
// pure function of its inputs and never mutates them. The order of lite is
// kept; a repeated id keeps its first occurrence.
func Merge(lite []gamestate.Player, hist history.Map, live map[string]twitch.LiveStatus) []MergedPlayer {
	merged := make([]MergedPlayer, 0, len(lite))
	seen := make(map[string]bool, len(lite))

	for _, p := range lite {
		if p.Name == "" || IsAdmin(p.Name) {
			continue
		}
		if seen[p.ID] {
			log.Warn("Skipping player with duplicate id", "id", p.ID, "name", p.Name)
			continue
		}
		seen[p.ID] = true

		records := hist[p.ID]
		if records == nil {
			records = []history.Record{}
		}
		status := live[p.Name]

		merged = append(merged, MergedPlayer{
			Player:         p,
			AvatarURL:      AvatarURL(p.Name),
			Color:          StringToColor(p.Name),
			History:        records,
			IsLive:         status.IsLive,
			TwitchUsername: twitch.ChannelURL(p.Name),
			TwitchCategory: status.Category,
			Stats:          Tally(records),
		})
	}
	return merged
}

// Names returns the display names of the non-admin players in lite, in order.
func Names(lite []gamestate.Player) []string {
	names := make([]string, 0, len(lite))
	for _, p := range lite {
		if p.Name == "" || IsAdmin(p.Name) {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}
