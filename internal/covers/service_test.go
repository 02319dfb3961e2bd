package covers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc, store cache.Store) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{
		APIKey:     "k",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Store:      store,
		Now:        func() time.Time { return time.UnixMilli(1000) },
	})
}

func TestLookup_FoundAndCached(t *testing.T) {
	var calls atomic.Int32
	store := cache.NewMock()
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		assert.Equal(t, "Hollow Knight", r.URL.Query().Get("search"))
		assert.Equal(t, "1", r.URL.Query().Get("page_size"))
		fmt.Fprint(w, `{"results":[{"background_image":"https://img/hk.jpg"}]}`)
	}, store)

	res, err := svc.Lookup(context.Background(), " Hollow Knight ")
	require.NoError(t, err)
	assert.Equal(t, Result{URL: "https://img/hk.jpg", Found: true}, res)

	res, err = svc.Lookup(context.Background(), "hollow knight")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int32(1), calls.Load(), "second lookup is served from memory")
	assert.True(t, store.Has(cache.KeyCovers))
}

func TestLookup_MissIsCached(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"results":[]}`)
	}, nil)

	for range 3 {
		res, err := svc.Lookup(context.Background(), "Unknown Game")
		require.NoError(t, err)
		assert.False(t, res.Found)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestLookup_ErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"results":[{"background_image":"https://img/x.jpg"}]}`)
	}, nil)

	_, err := svc.Lookup(context.Background(), "Celeste")
	require.Error(t, err)

	res, err := svc.Lookup(context.Background(), "Celeste")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLookup_ShortNameSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, nil)

	res, err := svc.Lookup(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Equal(t, int32(0), calls.Load())
}

func TestLookup_ConcurrentCallsShareOneRequest(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		fmt.Fprint(w, `{"results":[{"background_image":"https://img/h.jpg"}]}`)
	}, nil)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Lookup(context.Background(), "Hades")
			assert.NoError(t, err)
			assert.True(t, res.Found)
		}()
	}
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_RestoresPersistedEntries(t *testing.T) {
	store := cache.NewMock()
	first := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"background_image":"https://img/c.jpg"}]}`)
	}, store)
	_, err := first.Lookup(context.Background(), "Celeste")
	require.NoError(t, err)

	var calls atomic.Int32
	second := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, store)

	res, err := second.Lookup(context.Background(), "celeste")
	require.NoError(t, err)
	assert.Equal(t, Result{URL: "https://img/c.jpg", Found: true}, res)
	assert.Equal(t, int32(0), calls.Load())
}

func TestLookup_CallerCancellationDoesNotAbortSharedSearch(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		fmt.Fprint(w, `{"results":[{"background_image":"https://img/hades.jpg"}]}`)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	type outcome struct {
		res Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := svc.Lookup(ctx, "Hades")
		done <- outcome{res, err}
	}()

	<-arrived
	cancel()
	close(release)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, Result{URL: "https://img/hades.jpg", Found: true}, got.res)

	res, err := svc.Lookup(context.Background(), "hades")
	require.NoError(t, err)
	assert.True(t, res.Found, "the completed search is cached for later callers")
}
