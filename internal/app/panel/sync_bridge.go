package panel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
	"github.com/bnema/toolip/internal/logging"
)

// Bridge forwards storage changes and runtime messages to a Session.
type Bridge struct {
	session   *Session
	watcher   port.StorageWatcher
	messenger port.Messenger
}

// NewBridge creates a bridge. watcher or messenger may be nil to skip that stream.
func NewBridge(session *Session, watcher port.StorageWatcher, messenger port.Messenger) *Bridge {
	return &Bridge{session: session, watcher: watcher, messenger: messenger}
}

// Run consumes both streams until ctx ends or a stream closes.
func (b *Bridge) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "sync_bridge")
	g, gctx := errgroup.WithContext(ctx)

	if b.watcher != nil {
		changes, err := b.watcher.Subscribe(gctx)
		if err != nil {
			return fmt.Errorf("failed to subscribe to storage changes: %w", err)
		}
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case change, ok := <-changes:
					if !ok {
						return nil
					}
					b.HandleChange(gctx, change)
				}
			}
		})
	}

	if b.messenger != nil {
		messages, err := b.messenger.Listen(gctx)
		if err != nil {
			return fmt.Errorf("failed to listen for runtime messages: %w", err)
		}
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case msg, ok := <-messages:
					if !ok {
						return nil
					}
					b.HandleMessage(gctx, msg)
				}
			}
		})
	}

	logging.FromContext(ctx).Debug().Msg("sync bridge running")
	return g.Wait()
}

// HandleChange reacts to one storage change. Local-area changes are ignored.
func (b *Bridge) HandleChange(ctx context.Context, change entity.StorageChange) {
	log := logging.FromContext(ctx)
	if change.Area == entity.StorageAreaLocal {
		return
	}

	switch change.Key {
	case entity.SitesKey:
		if err := b.session.ReloadSites(ctx); err != nil {
			log.Error().Err(err).Msg("failed to reload sites after storage change")
		}
	case entity.ThemeKey:
		if theme, ok := entity.DecodeStoredTheme(change.NewValue); ok {
			b.session.ApplyTheme(ctx, theme)
			return
		}
		b.session.RefreshTheme(ctx)
	default:
		log.Debug().Str("key", change.Key).Msg("ignoring storage change")
	}
}

// HandleMessage reacts to one runtime message.
func (b *Bridge) HandleMessage(ctx context.Context, msg entity.RuntimeMessage) {
	switch msg.Type {
	case entity.MessageThemeChanged:
		if msg.Theme.Valid() {
			b.session.ApplyTheme(ctx, msg.Theme)
			return
		}
		b.session.RefreshTheme(ctx)
	default:
		logging.FromContext(ctx).Debug().Str("type", string(msg.Type)).Msg("ignoring runtime message")
	}
}
