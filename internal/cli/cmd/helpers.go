package cmd

import (
	"context"
	"errors"

	"github.com/bnema/toolip/internal/ui/dispatcher"
)

var errSaveFailed = errors.New("failed to save sites (rerun with TOOLIP_LOG_LEVEL=debug for details)")

// save persists the editor behind d.
func save(ctx context.Context, d *dispatcher.Dispatcher) error {
	if res := d.Dispatch(ctx, dispatcher.Command{Kind: dispatcher.SaveSites}); !res.OK {
		return errSaveFailed
	}
	return nil
}
