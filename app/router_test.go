package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Black-And-White-Club/pinball-bot/internal/testutils"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Text string `json:"text"`
}

func TestNewMessageRouter(t *testing.T) {
	router, err := NewMessageRouter(observability.NoOpLogger)
	require.NoError(t, err)

	bus := testutils.NewFakeEventBus()
	attempts := 0
	router.AddHandler("echo", "in", bus, "out", bus, func(msg *message.Message) ([]*message.Message, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("transient")
		}
		if attempts == 2 {
			panic("boom")
		}
		return []*message.Message{message.NewMessage(watermill.NewUUID(), msg.Payload)}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	in := message.NewMessage(watermill.NewUUID(), []byte(`{"text":"hello"}`))
	middleware.SetCorrelationID("corr-1", in)
	require.NoError(t, bus.Publish("in", in))

	require.Eventually(t, func() bool { return len(bus.Published("out")) == 1 }, 5*time.Second, 10*time.Millisecond)

	out := bus.Published("out")[0]
	assert.Equal(t, "corr-1", middleware.MessageCorrelationID(out))
	assert.Equal(t, "hello", testutils.DecodePayload[echo](t, out).Text)
	assert.Equal(t, 3, attempts)

	require.NoError(t, router.Close())
}
