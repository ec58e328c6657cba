package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// RuntimeTopic is the topic used for runtime messages.
const RuntimeTopic = "toolip.runtime"

// Bus is an in-process messenger over a watermill go channel pub/sub.
// Messages sent while nobody listens are dropped.
type Bus struct {
	pubSub *gochannel.GoChannel
}

// NewBus creates a bus logging through logger.
func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, logger),
	}
}

// Send implements port.Messenger.
func (b *Bus) Send(ctx context.Context, msg entity.RuntimeMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode runtime message: %w", err)
	}

	wm := message.NewMessage(watermill.NewUUID(), payload)
	wm.Metadata.Set("type", string(msg.Type))
	if err := b.pubSub.Publish(RuntimeTopic, wm); err != nil {
		return fmt.Errorf("failed to publish runtime message: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("type", string(msg.Type)).Str("message_id", wm.UUID).Msg("runtime message sent")
	return nil
}

// Listen implements port.Messenger. Undecodable messages are acked and skipped.
func (b *Bus) Listen(ctx context.Context) (<-chan entity.RuntimeMessage, error) {
	log := logging.FromContext(ctx)

	raw, err := b.pubSub.Subscribe(ctx, RuntimeTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to runtime messages: %w", err)
	}

	out := make(chan entity.RuntimeMessage)
	go func() {
		defer close(out)
		for wm := range raw {
			var msg entity.RuntimeMessage
			if err := json.Unmarshal(wm.Payload, &msg); err != nil {
				log.Warn().Err(err).Str("message_id", wm.UUID).Msg("dropping malformed runtime message")
				wm.Ack()
				continue
			}
			select {
			case out <- msg:
				wm.Ack()
			case <-ctx.Done():
				wm.Nack()
				return
			}
		}
	}()
	return out, nil
}

// Close shuts the pub/sub down and closes every listener channel.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}

var _ port.Messenger = (*Bus)(nil)
