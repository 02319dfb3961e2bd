package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var errUnauthorized = errors.New("stream request unauthorized")

// NewClient creates a stream status client.
func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Client{
		httpClient: cfg.HTTPClient,
		creds: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.AuthURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		apiURL:   strings.TrimRight(cfg.APIURL, "/"),
		clientID: cfg.ClientID,
		metrics:  cfg.Metrics,
		now:      cfg.Now,
	}
}

var _ Checker = (*Client)(nil)

// ChannelURL returns the channel address for a display name, or "" when the
// name is blank.
func ChannelURL(name string) string {
	login := normalize(name)
	if login == "" {
		return ""
	}
	return "https://twitch.tv/" + login
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CheckStatus resolves names to logins, queries them in chunks and maps live
// streams back to every display name that produced the login.
func (c *Client) CheckStatus(ctx context.Context, names []string) map[string]LiveStatus {
	live := make(map[string]LiveStatus)

	byLogin := make(map[string][]string)
	var logins []string
	for _, name := range names {
		login := normalize(name)
		if login == "" {
			continue
		}
		if _, seen := byLogin[login]; !seen {
			logins = append(logins, login)
		}
		byLogin[login] = append(byLogin[login], name)
	}
	if len(logins) == 0 {
		return live
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		log.Error("Twitch auth failed", "error", err)
		return live
	}

	for start := 0; start < len(logins); start += ChunkSize {
		end := min(start+ChunkSize, len(logins))
		streams, err := c.fetchStreams(ctx, token, logins[start:end])
		if err != nil {
			if errors.Is(err, errUnauthorized) {
				c.invalidate()
			}
			log.Warn("Twitch streams fetch failed for chunk", "offset", start, "error", err)
			continue
		}
		for _, s := range streams {
			if s.Type != "live" {
				continue
			}
			for _, name := range byLogin[strings.ToLower(s.UserLogin)] {
				live[name] = LiveStatus{IsLive: true, Category: s.GameName}
			}
		}
	}
	log.Debug("Checked stream status", "logins", len(logins), "live", len(live))
	return live
}

// accessToken returns the cached app token, exchanging client credentials
// once it has expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiry) {
		return c.token, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("client credentials exchange: %w", err)
	}

	c.token = tok.AccessToken
	c.expiry = c.now().Add(lifetime(tok) - ExpiryMargin)
	log.Debug("Acquired Twitch app token", "expires", c.expiry)
	return c.token, nil
}

func (c *Client) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiry = time.Time{}
}

// lifetime reads the stated token lifetime. The library converts it to an
// absolute expiry on the wall clock, so the raw value is used instead to keep
// the injected clock authoritative.
func lifetime(tok *oauth2.Token) time.Duration {
	if tok.ExpiresIn > 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}
	if v, ok := tok.Extra("expires_in").(float64); ok {
		return time.Duration(v) * time.Second
	}
	return 0
}

func (c *Client) fetchStreams(ctx context.Context, token string, logins []string) ([]stream, error) {
	query := url.Values{}
	for _, login := range logins {
		query.Add("user_login", login)
	}
	query.Set("first", fmt.Sprint(ChunkSize))
	endpoint := c.apiURL + "/streams?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	if c.metrics != nil {
		c.metrics.IncStreamRequests()
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var body streamsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return body.Data, nil
}
