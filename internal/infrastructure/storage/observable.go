package storage

import (
	"context"
	"fmt"

	"github.com/bnema/toolip/internal/domain/repository"
)

// ObservableSettings decorates a settings repository so that successful
// writes are reported to a ChangeHub.
type ObservableSettings struct {
	inner repository.SettingsRepository
	hub   *ChangeHub
}

// NewObservableSettings wraps inner and seeds hub with its current contents.
func NewObservableSettings(ctx context.Context, inner repository.SettingsRepository, hub *ChangeHub) (*ObservableSettings, error) {
	values, err := inner.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed change hub: %w", err)
	}
	hub.Seed(values)
	return &ObservableSettings{inner: inner, hub: hub}, nil
}

func (o *ObservableSettings) Get(ctx context.Context, key string) ([]byte, error) {
	return o.inner.Get(ctx, key)
}

func (o *ObservableSettings) GetAll(ctx context.Context) (map[string][]byte, error) {
	return o.inner.GetAll(ctx)
}

func (o *ObservableSettings) Set(ctx context.Context, key string, value []byte) error {
	if err := o.inner.Set(ctx, key, value); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	o.hub.Observe(key, value)
	return nil
}

// Hub returns the hub fed by this repository.
func (o *ObservableSettings) Hub() *ChangeHub {
	return o.hub
}

var _ repository.SettingsRepository = (*ObservableSettings)(nil)
