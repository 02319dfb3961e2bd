package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rggevent/boardwatch/internal/metrics"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// upstream fakes both the token and the streams endpoint.
type upstream struct {
	server       *httptest.Server
	tokenCalls   atomic.Int32
	streamCalls  atomic.Int32
	tokenStatus  int
	streamStatus int
	streamBody   string
	live         map[string]string // login -> game
	chunkSizes   []int
	mu           sync.Mutex
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{tokenStatus: http.StatusOK, streamStatus: http.StatusOK, live: map[string]string{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		u.tokenCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "cid", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		if u.tokenStatus != http.StatusOK {
			w.WriteHeader(u.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600,"token_type":"bearer"}`, u.tokenCalls.Load())
	})
	mux.HandleFunc("/helix/streams", func(w http.ResponseWriter, r *http.Request) {
		u.streamCalls.Add(1)
		assert.Equal(t, "cid", r.Header.Get("Client-ID"))
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer tok-")
		assert.Equal(t, "100", r.URL.Query().Get("first"))

		logins := r.URL.Query()["user_login"]
		u.mu.Lock()
		u.chunkSizes = append(u.chunkSizes, len(logins))
		u.mu.Unlock()

		if u.streamStatus != http.StatusOK {
			w.WriteHeader(u.streamStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if u.streamBody != "" {
			fmt.Fprint(w, u.streamBody)
			return
		}
		var data []map[string]string
		for _, login := range logins {
			if game, ok := u.live[login]; ok {
				data = append(data, map[string]string{"user_login": login, "type": "live", "game_name": game})
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	})
	u.server = httptest.NewServer(mux)
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) client(clock *fakeClock, m metrics.Metrics) *Client {
	return NewClient(Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		AuthURL:      u.server.URL + "/oauth2/token",
		APIURL:       u.server.URL + "/helix",
		HTTPClient:   u.server.Client(),
		Metrics:      m,
		Now:          clock.Now,
	})
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCheckStatus_ChunksRequests(t *testing.T) {
	u := newUpstream(t)
	m := metrics.NewMock()
	c := u.client(newClock(), m)

	names := make([]string, 150)
	for i := range names {
		names[i] = fmt.Sprintf("player%03d", i)
	}
	c.CheckStatus(context.Background(), names)

	assert.Equal(t, int32(2), u.streamCalls.Load())
	assert.Equal(t, []int{100, 50}, u.chunkSizes)
	assert.Equal(t, 2, m.StreamRequests())
}

func TestCheckStatus_MatchesNamesCaseInsensitively(t *testing.T) {
	u := newUpstream(t)
	u.live["bob"] = "Hades"
	c := u.client(newClock(), nil)

	got := c.CheckStatus(context.Background(), []string{" Bob ", "alice", ""})

	assert.Equal(t, map[string]LiveStatus{" Bob ": {IsLive: true, Category: "Hades"}}, got)
}

func TestCheckStatus_OnlyLiveStreamsCount(t *testing.T) {
	u := newUpstream(t)
	u.streamBody = `{"data":[{"user_login":"Bob","type":"","game_name":"X"},{"user_login":"Eve","type":"live","game_name":""}]}`
	c := u.client(newClock(), nil)

	got := c.CheckStatus(context.Background(), []string{"bob", "eve"})

	assert.Equal(t, map[string]LiveStatus{"eve": {IsLive: true}}, got)
}

func TestCheckStatus_ReusesTokenUntilExpiry(t *testing.T) {
	u := newUpstream(t)
	clock := newClock()
	c := u.client(clock, nil)
	ctx := context.Background()

	c.CheckStatus(ctx, []string{"a"})
	c.CheckStatus(ctx, []string{"a"})
	assert.Equal(t, int32(1), u.tokenCalls.Load(), "token is cached")

	// Lifetime is 3600s minus the 60s margin.
	clock.Advance(3539 * time.Second)
	c.CheckStatus(ctx, []string{"a"})
	assert.Equal(t, int32(1), u.tokenCalls.Load())

	clock.Advance(2 * time.Second)
	c.CheckStatus(ctx, []string{"a"})
	assert.Equal(t, int32(2), u.tokenCalls.Load(), "expired token is re-acquired")
}

func TestCheckStatus_AuthFailureYieldsEmptyMap(t *testing.T) {
	u := newUpstream(t)
	u.tokenStatus = http.StatusForbidden
	u.live["bob"] = "Hades"
	c := u.client(newClock(), nil)

	got := c.CheckStatus(context.Background(), []string{"bob"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, int32(0), u.streamCalls.Load())
}

func TestCheckStatus_ChunkFailureIsSkipped(t *testing.T) {
	u := newUpstream(t)
	u.streamStatus = http.StatusInternalServerError
	c := u.client(newClock(), nil)

	got := c.CheckStatus(context.Background(), []string{"bob"})
	assert.Empty(t, got)
}

func TestCheckStatus_UnauthorizedInvalidatesToken(t *testing.T) {
	u := newUpstream(t)
	u.streamStatus = http.StatusUnauthorized
	c := u.client(newClock(), nil)
	ctx := context.Background()

	c.CheckStatus(ctx, []string{"bob"})
	c.CheckStatus(ctx, []string{"bob"})

	assert.Equal(t, int32(2), u.tokenCalls.Load())
}

func TestCheckStatus_NoNamesMakesNoRequests(t *testing.T) {
	u := newUpstream(t)
	c := u.client(newClock(), nil)

	got := c.CheckStatus(context.Background(), []string{"", "   "})

	assert.Empty(t, got)
	assert.Equal(t, int32(0), u.tokenCalls.Load())
}

func TestChannelURL(t *testing.T) {
	assert.Equal(t, "https://twitch.tv/bob", ChannelURL("  BoB "))
	assert.Equal(t, "", ChannelURL("  "))
}
