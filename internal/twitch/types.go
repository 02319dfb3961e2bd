package twitch

import (
	"net/http"
	"sync"
	"time"

	"github.com/rggevent/boardwatch/internal/metrics"
	"golang.org/x/oauth2/clientcredentials"
)

// Upstream defaults.
const (
	DefaultAuthURL = "https://id.twitch.tv/oauth2/token"
	DefaultAPIURL  = "https://api.twitch.tv/helix"

	// ChunkSize is the provider's limit of logins per streams request.
	ChunkSize = 100
	// ExpiryMargin is subtracted from the stated token lifetime.
	ExpiryMargin = 60 * time.Second
)

// LiveStatus is the stream state of one player, keyed by display name.
type LiveStatus struct {
	IsLive   bool   `json:"isLive" msgpack:"isLive"`
	Category string `json:"category,omitempty" msgpack:"category,omitempty"`
}

// Config configures a Client. Only ClientID and ClientSecret are required.
type Config struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	APIURL       string
	HTTPClient   *http.Client
	Metrics      metrics.Metrics
	// Now is the clock used for token expiry.
	Now func() time.Time
}

// Client checks stream status through the Helix API with an app token.
type Client struct {
	httpClient *http.Client
	creds      clientcredentials.Config
	apiURL     string
	clientID   string
	metrics    metrics.Metrics
	now        func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

type streamsResponse struct {
	Data []stream `json:"data"`
}

type stream struct {
	UserLogin string `json:"user_login"`
	Type      string `json:"type"`
	GameName  string `json:"game_name"`
}
