package covers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/rggevent/boardwatch/internal/payload"
)

// New creates a cover service and restores previously cached lookups.
func New(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Service{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		store:      cfg.Store,
		now:        cfg.Now,
		entries:    make(map[string]entry),
	}
	if s.store != nil && s.store.Load(cache.KeyCovers, &s.entries) {
		log.Info("Restored cover cache", "entries", len(s.entries))
	}
	if s.entries == nil {
		s.entries = make(map[string]entry)
	}
	return s
}

var _ Finder = (*Service)(nil)

// Key normalizes a game name into its cache key.
func Key(game string) string {
	return strings.ToLower(strings.TrimSpace(game))
}

// Lookup returns the cover for game. Names shorter than MinNameLength yield
// a miss without a request. Upstream failures are returned and not cached so
// the next lookup tries again.
func (s *Service) Lookup(ctx context.Context, game string) (Result, error) {
	key := Key(game)
	if utf8.RuneCountInString(key) < MinNameLength {
		return Result{}, nil
	}

	s.mu.RLock()
	cached, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return Result{URL: cached.URL, Found: cached.Found}, nil
	}

	// The flight is shared, so one caller going away must not cancel it.
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (any, error) {
		res, err := s.search(flightCtx, strings.TrimSpace(game))
		if err != nil {
			return Result{}, err
		}
		s.remember(key, res)
		return res, nil
	})
	if err != nil {
		log.Warn("Failed to fetch cover", "game", game, "error", err)
		return Result{}, err
	}
	log.Debug("Resolved cover", "game", game, "found", v.(Result).Found, "shared", shared)
	return v.(Result), nil
}

func (s *Service) remember(key string, res Result) {
	s.mu.Lock()
	s.entries[key] = entry{URL: res.URL, Found: res.Found, Timestamp: s.now().UnixMilli()}
	snapshot := make(map[string]entry, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if s.store != nil {
		s.store.Save(cache.KeyCovers, snapshot)
	}
}

func (s *Service) search(ctx context.Context, game string) (Result, error) {
	query := url.Values{}
	query.Set("key", s.apiKey)
	query.Set("search", game)
	query.Set("page_size", "1")

	body, err := payload.Get(ctx, s.httpClient, s.baseURL+"?"+query.Encode())
	if err != nil {
		return Result{}, fmt.Errorf("error searching cover: %w", err)
	}
	doc, err := payload.Parse(body)
	if err != nil {
		return Result{}, fmt.Errorf("error parsing cover search: %w", err)
	}

	image := doc.Get("results.0.background_image")
	if !payload.Truthy(image) {
		return Result{}, nil
	}
	return Result{URL: image.String(), Found: true}, nil
}
