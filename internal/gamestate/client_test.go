package gamestate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rggevent/boardwatch/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, status int, body string) *APIClient {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gamestate.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return &APIClient{httpClient: server.Client(), BaseURL: server.URL}
}

func TestFetch_BobScenario(t *testing.T) {
	client := newTestClient(t, http.StatusOK, `{"players":[{"id":"1","name":"Bob","tile":150,"hp":120,"maxHp":100}]}`)

	snap, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, snap.Players, 1)
	bob := snap.Players[0]
	assert.Equal(t, "1", bob.ID)
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, 100, bob.Position)
	assert.Equal(t, 120.0, bob.HP, "hp is never clamped")
	assert.Equal(t, 100.0, bob.MaxHP)
	assert.Equal(t, StatusActive, bob.Status)
}

func TestParse_ShapeTolerance(t *testing.T) {
	players := `[{"id":"7","name":"Alice","tile":12,"effects":[{"name":"Яд (Poison)","duration":2}]}]`
	shapes := map[string]string{
		"root":           `{"players":` + players + `}`,
		"gamestate":      `{"gamestate":{"players":` + players + `}}`,
		"data.gamestate": `{"data":{"gamestate":{"players":` + players + `}}}`,
		"data":           `{"data":{"players":` + players + `}}`,
	}

	want, err := Parse([]byte(shapes["root"]))
	require.NoError(t, err)

	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_PositionClamping(t *testing.T) {
	snap, err := Parse([]byte(`{"players":[{"name":"a","tile":0},{"name":"b","tile":-5},{"name":"c","tile":150},{"name":"d","position":42}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Players, 4)

	assert.Equal(t, 1, snap.Players[0].Position)
	assert.Equal(t, 1, snap.Players[1].Position)
	assert.Equal(t, 100, snap.Players[2].Position)
	assert.Equal(t, 42, snap.Players[3].Position, "legacy position field is used when tile is absent")
}

func TestParse_Defaults(t *testing.T) {
	snap, err := Parse([]byte(`{"players":[{"hp":0,"inventory":[{}],"effects":[{"isPositive":false}]}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Players, 1)

	p := snap.Players[0]
	assert.Equal(t, "0", p.ID, "array index is the fallback id")
	assert.Equal(t, "Operative 0", p.Name)
	assert.Equal(t, 1, p.Position)
	assert.Equal(t, 0.0, p.HP, "an explicit zero hp is kept")
	assert.Equal(t, 100.0, p.MaxHP)

	require.Len(t, p.Inventory, 1)
	assert.Equal(t, Item{
		ID:          "item-0-0",
		Name:        "Unknown Item",
		Icon:        "📦",
		Description: "Описание отсутствует",
		Count:       1,
		IsPositive:  true,
		Rarity:      "common",
	}, p.Inventory[0])

	require.Len(t, p.Effects, 1)
	assert.Equal(t, "effect-0-0", p.Effects[0].ID)
	assert.Equal(t, "Unknown", p.Effects[0].Name)
	assert.False(t, p.Effects[0].IsPositive)
}

func TestParse_ArrayIndexCountsSkippedNulls(t *testing.T) {
	snap, err := Parse([]byte(`{"players":[null,{"name":"Alice"}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Players, 1)

	assert.Equal(t, "1", snap.Players[0].ID, "the raw array index is kept so ids match the history source")
	assert.Equal(t, "Alice", snap.Players[0].Name)
}

func TestParse_KeyedCollectionUsesKeyAsID(t *testing.T) {
	snap, err := Parse([]byte(`{"players":{"p1":{"name":"One"},"p2":{"name":"Two","id":"explicit"}}}`))
	require.NoError(t, err)
	require.Len(t, snap.Players, 2)

	assert.Equal(t, "p1", snap.Players[0].ID)
	assert.Equal(t, "explicit", snap.Players[1].ID)
}

func TestParse_EffectsResolveGlossaryAndStatus(t *testing.T) {
	snap, err := Parse([]byte(`{"players":[{"id":"3","name":"Eve","effects":[{"name":"Обморожение (Stun)","duration":1},{"name":"Щит","description":"custom"}],"inventory":[{"name":"Ржавый Ключ","count":2}]}]}`))
	require.NoError(t, err)
	p := snap.Players[0]

	assert.Equal(t, StatusStunned, p.Status)
	assert.Equal(t, "trap-6", p.Effects[0].GlossaryID)
	assert.Contains(t, p.Effects[0].Description, "пропускает свой следующий ход")
	assert.Equal(t, "custom", p.Effects[1].Description, "payload description wins over glossary")
	assert.Equal(t, "shield", p.Effects[1].GlossaryID)

	assert.Equal(t, "🔑", p.Inventory[0].Icon)
	assert.Equal(t, "item-4", p.Inventory[0].GlossaryID)
	assert.Equal(t, 2, p.Inventory[0].Count)
}

func TestParse_DeadPlayerIsEliminated(t *testing.T) {
	snap, err := Parse([]byte(`{"players":[{"name":"Zed","isDead":true,"effects":[{"name":"Shield"}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, StatusEliminated, snap.Players[0].Status)
}

func TestParse_EventLogLastFiveNewestFirst(t *testing.T) {
	snap, err := Parse([]byte(`{"gamestate":{"globalLog":["a","b","c","d","e","f","g"],"players":[{"name":"x"}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, snap.EventLog)
}

func TestParse_EmptyPlayersKeepsEventLog(t *testing.T) {
	snap, err := Parse([]byte(`{"globalLog":["only"],"players":[]}`))
	assert.ErrorIs(t, err, payload.ErrEmptyPayload)
	assert.Equal(t, []string{"only"}, snap.EventLog)
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"server error", http.StatusInternalServerError, `oops`, payload.ErrNetwork},
		{"null body", http.StatusOK, `null`, payload.ErrEmptyPayload},
		{"unknown shape", http.StatusOK, `{"teams":[]}`, payload.ErrShape},
		{"all null players", http.StatusOK, `{"players":[null,null]}`, payload.ErrEmptyPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.status, tt.body)
			_, err := client.Fetch(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := &APIClient{httpClient: server.Client(), BaseURL: server.URL}
	server.Close()

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, payload.ErrNetwork)
}
