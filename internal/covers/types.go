package covers

import (
	"net/http"
	"sync"
	"time"

	"github.com/rggevent/boardwatch/internal/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the game search endpoint.
const DefaultBaseURL = "https://api.rawg.io/api/games"

// MinNameLength is the shortest game name worth searching for.
const MinNameLength = 2

// Result is the outcome of a cover lookup. A miss is a valid, cacheable
// result with an empty URL.
type Result struct {
	URL   string `json:"url"`
	Found bool   `json:"found"`
}

// entry is one cached lookup. Entries never expire.
type entry struct {
	URL       string `msgpack:"url"`
	Found     bool   `msgpack:"found"`
	Timestamp int64  `msgpack:"timestamp"`
}

// Config configures a Service.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Store      cache.Store
	Now        func() time.Time
}

// Service resolves game names to cover images through the search API and a
// name-keyed memory cache persisted in the cache store.
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	store      cache.Store
	now        func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}
