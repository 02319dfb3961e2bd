package reconcile

import (
	"strings"

	"github.com/rggevent/boardwatch/internal/history"
)

var (
	winKeywords    = []string{"пройдено", "win", "pobed", "побед", "1"}
	dropKeywords   = []string{"drop", "дроп", "dead", "death", "выбыл", "погиб", "смерть"}
	rerollKeywords = []string{"reroll", "реролл"}
)

func containsAny(result string, keywords []string) bool {
	r := strings.ToLower(result)
	for _, k := range keywords {
		if strings.Contains(r, k) {
			return true
		}
	}
	return false
}

// IsWin reports whether a free-text result reads as a completed game.
func IsWin(result string) bool { return containsAny(result, winKeywords) }

// IsDrop reports whether a result reads as a dropped game or a death.
func IsDrop(result string) bool { return containsAny(result, dropKeywords) }

// IsReroll reports whether a result reads as a rerolled game.
func IsReroll(result string) bool { return containsAny(result, rerollKeywords) }

// Tally counts each category independently, so one record may land in
// several buckets.
func Tally(records []history.Record) Stats {
	stats := Stats{GamesPlayed: len(records)}
	for _, rec := range records {
		if IsWin(rec.Result) {
			stats.Wins++
		}
		if IsDrop(rec.Result) {
			stats.Drops++
		}
		if IsReroll(rec.Result) {
			stats.Rerolls++
		}
	}
	return stats
}
