package panel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/app/panel"
	portmocks "github.com/bnema/toolip/internal/application/port/mocks"
	"github.com/bnema/toolip/internal/domain/entity"
)

func TestBridge_SitesChangeReloads(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "https://c.example")
	require.NoError(t, f.session.Load(ctx))

	f.store.put(t, entity.SitesKey, threeSites()[:2])
	b := panel.NewBridge(f.session, nil, nil)
	b.HandleChange(ctx, entity.StorageChange{Area: entity.StorageAreaSync, Key: entity.SitesKey})

	assert.Len(t, f.session.Sites(), 2)
	assert.Equal(t, "https://a.example", f.session.CurrentURL())
}

func TestBridge_ThemeChangeApplies(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	b := panel.NewBridge(f.session, nil, nil)
	b.HandleChange(ctx, entity.StorageChange{Area: entity.StorageAreaSync, Key: entity.ThemeKey, NewValue: []byte(`"dark"`)})

	assert.Equal(t, entity.ThemeDark, f.session.Theme())
}

func TestBridge_ThemeRemovedFallsBackToStored(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))
	f.session.ApplyTheme(ctx, entity.ThemeDark)

	b := panel.NewBridge(f.session, nil, nil)
	b.HandleChange(ctx, entity.StorageChange{Area: entity.StorageAreaSync, Key: entity.ThemeKey})

	assert.Equal(t, entity.ThemeLight, f.session.Theme())
}

func TestBridge_IgnoresLocalAndUnknownKeys(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))
	renders := f.renderCount()

	b := panel.NewBridge(f.session, nil, nil)
	b.HandleChange(ctx, entity.StorageChange{Area: entity.StorageAreaLocal, Key: entity.SitesKey})
	b.HandleChange(ctx, entity.StorageChange{Area: entity.StorageAreaSync, Key: "other"})

	assert.Equal(t, renders, f.renderCount())
}

func TestBridge_ThemeMessageApplies(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	b := panel.NewBridge(f.session, nil, nil)
	b.HandleMessage(ctx, entity.NewThemeChangedMessage(entity.ThemeDark))
	assert.Equal(t, entity.ThemeDark, f.session.Theme())

	b.HandleMessage(ctx, entity.RuntimeMessage{Type: "somethingElse", Theme: entity.ThemeLight})
	assert.Equal(t, entity.ThemeDark, f.session.Theme())
}

func TestBridge_RunConsumesStreams(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	changes := make(chan entity.StorageChange, 1)
	messages := make(chan entity.RuntimeMessage, 1)
	watcher := portmocks.NewMockStorageWatcher(t)
	messenger := portmocks.NewMockMessenger(t)
	watcher.EXPECT().Subscribe(mock.Anything).Return((<-chan entity.StorageChange)(changes), nil)
	messenger.EXPECT().Listen(mock.Anything).Return((<-chan entity.RuntimeMessage)(messages), nil)

	b := panel.NewBridge(f.session, watcher, messenger)
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	messages <- entity.NewThemeChangedMessage(entity.ThemeDark)
	assert.Eventually(t, func() bool { return f.session.Theme() == entity.ThemeDark }, time.Second, 5*time.Millisecond)

	f.store.put(t, entity.SitesKey, threeSites()[2:])
	changes <- entity.StorageChange{Area: entity.StorageAreaSync, Key: entity.SitesKey}
	assert.Eventually(t, func() bool { return len(f.session.Sites()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("bridge did not stop")
	}
}
