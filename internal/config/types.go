package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	LogLevel  string
	LogFormat string
	Turso     TursoConfig
	Sources   SourcesConfig
	Polling   PollingConfig
	Twitch    TwitchConfig
	Rawg      RawgConfig
	Slack     SlackConfig
	ProjectID string
	Topic     string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SourcesConfig points at the two realtime database roots. Neither URL carries
// a trailing ".json"; the fetchers append their own resource path.
type SourcesConfig struct {
	StateBaseURL   string
	HistoryBaseURL string
}

type PollingConfig struct {
	State   time.Duration
	History time.Duration
	Live    time.Duration
}

type TwitchConfig struct {
	ClientID     string
	ClientSecret string
}

// Enabled reports whether live status checks can authenticate at all.
func (t TwitchConfig) Enabled() bool {
	return t.ClientID != "" && t.ClientSecret != ""
}

type RawgConfig struct {
	APIKey string
}

type SlackConfig struct {
	Token     string
	ChannelID string
	DryRun    bool
}

func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}
