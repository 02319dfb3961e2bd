package gamestate

import (
	"strconv"
	"strings"

	"github.com/rggevent/boardwatch/internal/glossary"
	"github.com/rggevent/boardwatch/internal/payload"
	"github.com/tidwall/gjson"
)

// normalizePlayer falls back to key for the id. For array roots key is the
// index in the raw array, nulls included, not the index after dropping
// nulls. History entries are keyed the same way so the two stay joinable.
func normalizePlayer(key string, v gjson.Result) Player {
	id := payload.StringOr(v.Get("id"), key)

	p := Player{
		ID:        id,
		Name:      payload.StringOr(v.Get("name"), "Operative "+id),
		Position:  ClampPosition(position(v)),
		HP:        numberOr(v.Get("hp"), defaultHP),
		MaxHP:     numberOr(v.Get("maxHp"), defaultHP),
		IsDead:    v.Get("isDead").Bool(),
		Status:    StatusActive,
		Effects:   []Effect{},
		Inventory: []Item{},
	}

	effects := v.Get("effects")
	if effects.IsArray() {
		for i, e := range effects.Array() {
			p.Effects = append(p.Effects, normalizeEffect(id, i, e))
		}
	}
	p.Status = deriveStatus(p.IsDead, p.Effects)

	inventory := v.Get("inventory")
	if inventory.IsArray() {
		for i, it := range inventory.Array() {
			p.Inventory = append(p.Inventory, normalizeItem(id, i, it))
		}
	}
	return p
}

func normalizeEffect(playerID string, idx int, e gjson.Result) Effect {
	rawName := e.Get("name").String()
	return Effect{
		ID:          "effect-" + playerID + "-" + strconv.Itoa(idx),
		Name:        payload.StringOr(e.Get("name"), "Unknown"),
		Duration:    int(e.Get("duration").Int()),
		IsPositive:  e.Get("isPositive").Type != gjson.False,
		Description: payload.StringOr(e.Get("description"), glossary.DescriptionByName(rawName)),
		GlossaryID:  glossary.IDByName(rawName),
	}
}

func normalizeItem(playerID string, idx int, it gjson.Result) Item {
	rawName := it.Get("name").String()
	description := payload.StringOr(it.Get("description"), glossary.DescriptionByName(rawName))
	if description == "" {
		description = missingItemText
	}
	count := 1
	if c := it.Get("count"); payload.Truthy(c) {
		count = int(c.Int())
	}
	return Item{
		ID:          "item-" + playerID + "-" + strconv.Itoa(idx),
		Name:        payload.StringOr(it.Get("name"), "Unknown Item"),
		Icon:        glossary.Icon(rawName),
		GlossaryID:  glossary.IDByName(rawName),
		Description: description,
		Count:       count,
		IsPositive:  it.Get("isPositive").Type != gjson.False,
		Rarity:      "common",
	}
}

// position reads the tile, falling back to the legacy position field, then 1.
func position(v gjson.Result) int {
	if tile := v.Get("tile"); payload.Truthy(tile) {
		return int(tile.Float())
	}
	if pos := v.Get("position"); payload.Truthy(pos) {
		return int(pos.Float())
	}
	return MinPosition
}

// ClampPosition bounds a tile index to the board.
func ClampPosition(pos int) int {
	if pos > MaxPosition {
		return MaxPosition
	}
	if pos < MinPosition {
		return MinPosition
	}
	return pos
}

func numberOr(r gjson.Result, fallback float64) float64 {
	if !payload.Present(r) {
		return fallback
	}
	return r.Float()
}

func deriveStatus(isDead bool, effects []Effect) Status {
	if isDead {
		return StatusEliminated
	}
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = strings.ToUpper(e.Name)
	}
	for _, rule := range []struct {
		marker string
		status Status
	}{
		{"STUN", StatusStunned},
		{"POISON", StatusPoisoned},
		{"SHIELD", StatusShielded},
	} {
		for _, n := range names {
			if strings.Contains(n, rule.marker) {
				return rule.status
			}
		}
	}
	return StatusActive
}

// lastEvents returns up to maxLogEntries of the root's globalLog, newest first.
func lastEvents(root gjson.Result) []string {
	logField := root.Get("globalLog")
	if !logField.IsArray() {
		return nil
	}
	all := logField.Array()
	start := len(all) - maxLogEntries
	if start < 0 {
		start = 0
	}
	events := make([]string, 0, len(all)-start)
	for i := len(all) - 1; i >= start; i-- {
		events = append(events, all[i].String())
	}
	return events
}
