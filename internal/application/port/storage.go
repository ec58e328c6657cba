package port

import (
	"context"

	"github.com/bnema/toolip/internal/domain/entity"
)

// StorageWatcher delivers change notifications from the synced store.
type StorageWatcher interface {
	// Subscribe returns a channel of changes. The channel is closed when ctx ends.
	Subscribe(ctx context.Context) (<-chan entity.StorageChange, error)
}

// PanelStateStore persists transient panel state outside the synced store.
type PanelStateStore interface {
	// LoadCurrentURL returns the last opened URL, or "" if none was saved.
	LoadCurrentURL(ctx context.Context) (string, error)
	SaveCurrentURL(ctx context.Context, url string) error
}
