// Package eventbus publishes and subscribes to NATS JetStream through Watermill.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
)

// EventBus is a Watermill publisher and subscriber that can provision streams.
type EventBus interface {
	message.Publisher
	message.Subscriber
	// CreateStream ensures a JetStream stream capturing "<name>.>" exists.
	CreateStream(ctx context.Context, name string) error
}

// ErrMissingTopic is returned when a message is published without a topic.
var ErrMissingTopic = errors.New("message has no topic")

// Config configures the JetStream event bus.
type Config struct {
	URL           string
	QueueGroup    string
	DurablePrefix string
	AckWait       time.Duration
}

type jetStreamBus struct {
	logger     *slog.Logger
	conn       *nc.Conn
	js         nc.JetStreamContext
	publisher  *wmnats.Publisher
	subscriber *wmnats.Subscriber
}

// NewEventBus connects to NATS and builds the Watermill publisher and subscriber.
func NewEventBus(ctx context.Context, cfg Config, logger *slog.Logger) (EventBus, error) {
	if cfg.QueueGroup == "" {
		cfg.QueueGroup = "pinball-bot"
	}
	if cfg.DurablePrefix == "" {
		cfg.DurablePrefix = "pinball-bot"
	}
	if cfg.AckWait == 0 {
		cfg.AckWait = 30 * time.Second
	}

	wmLogger := watermill.NewSlogLogger(logger)

	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
		nc.ErrorHandler(func(_ *nc.Conn, s *nc.Subscription, err error) {
			if s != nil {
				logger.Error("Error in NATS subscription",
					attr.String("subject", s.Subject),
					attr.String("queue", s.Queue),
					attr.Error(err),
				)
				return
			}
			logger.Error("Error in NATS connection", attr.Error(err))
		}),
	}

	conn, err := nc.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	jsConfig := wmnats.JetStreamConfig{
		Disabled:      false,
		AutoProvision: false,
		DurablePrefix: cfg.DurablePrefix,
	}

	publisher, err := wmnats.NewPublisher(wmnats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: options,
		Marshaler:   &wmnats.NATSMarshaler{},
		JetStream:   jsConfig,
	}, wmLogger)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create Watermill NATS publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(wmnats.SubscriberConfig{
		URL:              cfg.URL,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: 1,
		AckWaitTimeout:   cfg.AckWait,
		NatsOptions:      options,
		Unmarshaler:      &wmnats.NATSMarshaler{},
		JetStream:        jsConfig,
	}, wmLogger)
	if err != nil {
		_ = publisher.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to create Watermill NATS subscriber: %w", err)
	}

	logger.InfoContext(ctx, "JetStream event bus connected", attr.String("url", cfg.URL))

	return &jetStreamBus{
		logger:     logger,
		conn:       conn,
		js:         js,
		publisher:  publisher,
		subscriber: subscriber,
	}, nil
}

// Publish sends messages to topic. An empty topic means each message carries
// its own topic in metadata, which is how router handlers publish results.
func (b *jetStreamBus) Publish(topic string, messages ...*message.Message) error {
	return routeByTopic(b.publisher, topic, messages...)
}

func routeByTopic(pub message.Publisher, topic string, messages ...*message.Message) error {
	if topic != "" {
		return pub.Publish(topic, messages...)
	}
	for _, msg := range messages {
		t := msg.Metadata.Get(handlerwrapper.TopicMetadataKey)
		if t == "" {
			return fmt.Errorf("%w: message %s", ErrMissingTopic, msg.UUID)
		}
		if err := pub.Publish(t, msg); err != nil {
			return fmt.Errorf("failed to publish to %s: %w", t, err)
		}
	}
	return nil
}

func (b *jetStreamBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.subscriber.Subscribe(ctx, topic)
}

func (b *jetStreamBus) CreateStream(ctx context.Context, name string) error {
	if _, err := b.js.StreamInfo(name, nc.Context(ctx)); err == nil {
		return nil
	} else if !errors.Is(err, nc.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", name, err)
	}

	_, err := b.js.AddStream(&nc.StreamConfig{
		Name:      name,
		Subjects:  []string{name + ".>"},
		Storage:   nc.FileStorage,
		Retention: nc.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
	}, nc.Context(ctx))
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", name, err)
	}
	b.logger.InfoContext(ctx, "Created JetStream stream", attr.String("stream", name))
	return nil
}

func (b *jetStreamBus) Close() error {
	var errs []error
	if err := b.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close publisher: %w", err))
	}
	if err := b.subscriber.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close subscriber: %w", err))
	}
	b.conn.Close()
	return errors.Join(errs...)
}
