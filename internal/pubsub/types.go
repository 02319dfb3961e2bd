package pubsub

import (
	"sync"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client *pubsub.Client

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

// EventType represents the type of event/message sent via pubsub. It travels
// in the "event" attribute of every message.
type EventType string

const (
	EventPlayersMerged EventType = "players-merged"
)

// MergedSnapshot is the payload of an EventPlayersMerged message.
type MergedSnapshot struct {
	Players     any   `msgpack:"players"`
	GeneratedAt int64 `msgpack:"generatedAt"`
}
