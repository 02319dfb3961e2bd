package history

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

func TestFetch_RequestsRootDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.json", r.URL.Path)
		fmt.Fprint(w, `{"players":[{"id":"1","history":[{"day":2,"game":"Celeste","result":"Пройдено","time":"3ч","comment":"gg","score":8}]}]}`)
	}))
	defer server.Close()

	client := &APIClient{httpClient: server.Client(), BaseURL: server.URL}
	hist, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, hist["1"], 1)
	rec := hist["1"][0]
	assert.Equal(t, 2, rec.Day)
	assert.Equal(t, "Celeste", rec.Game)
	assert.Equal(t, "Пройдено", rec.Result)
	assert.Equal(t, "3ч", rec.Time)
	assert.Equal(t, "gg", rec.Comment)
	require.NotNil(t, rec.Score)
	assert.Equal(t, 8.0, *rec.Score)
}

func TestParse_ShapeTolerance(t *testing.T) {
	players := `[{"id":"1","history":[{"game":"Hades","result":"win"}]},{"id":"2"}]`
	shapes := []string{
		`{"players":` + players + `}`,
		`{"history":{"players":` + players + `}}`,
		`{"gamestate":{"players":` + players + `}}`,
	}

	want, err := Parse([]byte(shapes[0]))
	require.NoError(t, err)
	for i, body := range shapes {
		t.Run(fmt.Sprintf("shape-%d", i), func(t *testing.T) {
			got, err := Parse([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
	assert.Equal(t, []Record{}, want["2"], "a player without history has an empty list")
}

func TestParse_RecordDefaults(t *testing.T) {
	hist, err := Parse([]byte(`{"players":[{"id":"9","history":[{}]}]}`))
	require.NoError(t, err)

	assert.Equal(t, []Record{{
		Day:     0,
		Game:    "Неизвестно",
		Result:  "-",
		Time:    "-",
		Comment: "",
		Score:   nil,
	}}, hist["9"])
}

func TestParse_ZeroScoreIsKept(t *testing.T) {
	hist, err := Parse([]byte(`{"players":[{"id":"1","history":[{"score":0}]}]}`))
	require.NoError(t, err)
	require.NotNil(t, hist["1"][0].Score)
	assert.Equal(t, 0.0, *hist["1"][0].Score)
}

func TestParse_IDFallbacks(t *testing.T) {
	hist, err := Parse([]byte(`{"players":[null,{"history":[]},{"id":0,"history":[]}]}`))
	require.NoError(t, err)

	assert.Contains(t, hist, "1", "index fallback counts skipped nulls")
	assert.Contains(t, hist, "0", "an explicit zero id is kept")
	assert.Len(t, hist, 2)

	keyed, err := Parse([]byte(`{"history":{"players":{"p5":{"history":[]}}}}`))
	require.NoError(t, err)
	assert.Contains(t, keyed, "p5")
}

func TestParse_Failures(t *testing.T) {
	_, err := Parse([]byte(`{"players":[]}`))
	assert.ErrorIs(t, err, payload.ErrEmptyPayload)

	_, err = Parse([]byte(`{"teams":{}}`))
	assert.ErrorIs(t, err, payload.ErrShape)

	_, err = Parse([]byte(`null`))
	assert.ErrorIs(t, err, payload.ErrEmptyPayload)
}

func TestFetch_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := &APIClient{httpClient: server.Client(), BaseURL: server.URL}
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, payload.ErrNetwork)
}
