package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	DefaultStateBaseURL   = "https://testaucproject-default-rtdb.europe-west1.firebasedatabase.app"
	DefaultHistoryBaseURL = "https://historytestauc-default-rtdb.europe-west1.firebasedatabase.app"

	DefaultStateInterval   = 5 * time.Minute
	DefaultHistoryInterval = 10 * time.Minute
	DefaultLiveInterval    = 60 * time.Second
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:    getEnv("DB_NAME"),
		Port:      getEnvDefault("PORT", "8080"),
		LogLevel:  getEnvDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvDefault("LOG_FORMAT", "json"),
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Sources: SourcesConfig{
			StateBaseURL:   getEnvDefault("STATE_BASE_URL", DefaultStateBaseURL),
			HistoryBaseURL: getEnvDefault("HISTORY_BASE_URL", DefaultHistoryBaseURL),
		},
		Polling: PollingConfig{
			State:   getDuration("STATE_POLL_INTERVAL", DefaultStateInterval),
			History: getDuration("HISTORY_POLL_INTERVAL", DefaultHistoryInterval),
			Live:    getDuration("LIVE_POLL_INTERVAL", DefaultLiveInterval),
		},
		Twitch: TwitchConfig{
			ClientID:     os.Getenv("TWITCH_CLIENT_ID"),
			ClientSecret: os.Getenv("TWITCH_CLIENT_SECRET"),
		},
		Rawg: RawgConfig{
			APIKey: os.Getenv("RAWG_API_KEY"),
		},
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
			DryRun:    os.Getenv("NOTIFY_DRY_RUN") == "true",
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
		Topic:     getEnvDefault("PUBSUB_TOPIC", "boardwatch-players"),
	}
	return cfg
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn("Invalid duration in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}
