package eventbus

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
)

// PublishWithChannelScope publishes msg on "{baseTopic}.{channel}" so a
// consumer can follow one competition channel or all of them with a wildcard.
//
// Example:
//   - baseTopic: "competition.leaderboard.updated.v1"
//   - channel:   "competition-corner"
//   - result:    "competition.leaderboard.updated.v1.competition-corner"
func PublishWithChannelScope(bus message.Publisher, baseTopic, channel string, msg *message.Message) error {
	if channel == "" {
		return fmt.Errorf("channel cannot be empty for channel-scoped publish")
	}
	return bus.Publish(FormatChannelScopedTopic(baseTopic, channel), msg)
}

// FormatChannelScopedTopic formats a topic with the channel suffix without publishing.
func FormatChannelScopedTopic(baseTopic, channel string) string {
	return fmt.Sprintf("%s.%s", baseTopic, channel)
}
