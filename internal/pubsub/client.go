package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Pub/Sub in projectID.
func New(ctx context.Context, projectID string) (PubSubClient, error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return NewWithClient(pubSubC), nil
}

// NewWithClient wraps an existing Pub/Sub client.
func NewWithClient(c *pubsub.Client) PubSubClient {
	return &client{
		client: c,
		topics: make(map[string]*pubsub.Topic),
	}
}

func (c *client) topic(id string) *pubsub.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.topics[id]
	if !ok {
		t = c.client.Topic(id)
		c.topics[id] = t
	}
	return t
}

// SendMessage publishes data, msgpack encoded, and waits for the server ack.
func (c *client) SendMessage(ctx context.Context, topic string, event EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{"event": string(event)},
	}
	result := c.topic(topic).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Debug("Published message", "topic", topic, "event", event, "serverID", serverID, "bytes", len(msgpackData))
	return nil
}

// Close flushes pending publishes and releases the connection.
func (c *client) Close() error {
	c.mu.Lock()
	for _, t := range c.topics {
		t.Stop()
	}
	c.topics = make(map[string]*pubsub.Topic)
	c.mu.Unlock()
	return c.client.Close()
}

// Decode unpacks a message payload produced by SendMessage.
func Decode(data []byte, dst any) error {
	if err := msgpack.Unmarshal(data, dst); err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}
