package port

import (
	"context"

	"github.com/bnema/toolip/internal/domain/entity"
)

// Messenger passes runtime messages between surfaces of the same process.
type Messenger interface {
	Send(ctx context.Context, msg entity.RuntimeMessage) error
	// Listen returns a channel of messages. The channel is closed when ctx ends.
	Listen(ctx context.Context) (<-chan entity.RuntimeMessage, error)
}
