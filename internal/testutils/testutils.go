// Package testutils holds fakes shared by unit tests.
package testutils

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/Black-And-White-Club/pinball-bot/pkg/eventbus"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// FakeEventBus is an in-memory EventBus. Messages published with an empty
// topic are routed by their topic metadata, like the JetStream bus.
type FakeEventBus struct {
	*gochannel.GoChannel

	StreamErr error

	mu        sync.Mutex
	streams   []string
	published map[string][]*message.Message
}

var _ eventbus.EventBus = (*FakeEventBus)(nil)

// NewFakeEventBus creates an empty bus.
func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{
		GoChannel: gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{}),
		published: map[string][]*message.Message{},
	}
}

// Publish records and forwards messages.
func (b *FakeEventBus) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		t := topic
		if t == "" {
			t = msg.Metadata.Get(handlerwrapper.TopicMetadataKey)
		}
		b.mu.Lock()
		b.published[t] = append(b.published[t], msg)
		b.mu.Unlock()
		if err := b.GoChannel.Publish(t, msg); err != nil {
			return err
		}
	}
	return nil
}

// CreateStream records the stream name.
func (b *FakeEventBus) CreateStream(_ context.Context, name string) error {
	if b.StreamErr != nil {
		return b.StreamErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.streams = append(b.streams, name)
	return nil
}

// Streams lists created streams in order.
func (b *FakeEventBus) Streams() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.streams...)
}

// Published returns the messages sent to topic.
func (b *FakeEventBus) Published(topic string) []*message.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*message.Message(nil), b.published[topic]...)
}

// DecodePayload unmarshals a message payload into T.
func DecodePayload[T any](t *testing.T, msg *message.Message) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(msg.Payload, &out); err != nil {
		t.Fatalf("failed to decode payload of %s: %v", msg.UUID, err)
	}
	return out
}
