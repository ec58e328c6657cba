package panel_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/app/panel"
	portmocks "github.com/bnema/toolip/internal/application/port/mocks"
	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/domain/entity"
	repomocks "github.com/bnema/toolip/internal/domain/repository/mocks"
	"github.com/bnema/toolip/internal/infrastructure/surface"
	"github.com/bnema/toolip/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type store struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (s *store) put(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
}

func newStoreRepo(t *testing.T) (*repomocks.MockSettingsRepository, *store) {
	t.Helper()
	st := &store{values: map[string][]byte{}}
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string) ([]byte, error) {
		st.mu.Lock()
		defer st.mu.Unlock()
		return st.values[key], nil
	}).Maybe()
	repo.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, key string, value []byte) error {
		st.mu.Lock()
		defer st.mu.Unlock()
		st.values[key] = value
		return nil
	}).Maybe()
	return repo, st
}

func threeSites() entity.SiteList {
	return entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "A", Icon: "a.png"},
		{ID: "b", URL: "https://b.example", Title: "B", Icon: "b.png"},
		{ID: "c", URL: "https://c.example", Title: "C", Icon: "c.png"},
	}
}

type fixture struct {
	session  *panel.Session
	store    *store
	registry *usecase.SiteRegistry
	factory  *surface.HeadlessFactory
	mux      *panel.Multiplexer
	state    *portmocks.MockPanelStateStore
	theme    *portmocks.MockThemeApplier
	nav      *portmocks.MockNavigationRenderer

	mu       sync.Mutex
	rendered [][]entity.NavItem
	themes   []entity.Theme
}

// newFixture wires a session over sites with saved as the stored current URL.
func newFixture(t *testing.T, sites entity.SiteList, saved string) *fixture {
	t.Helper()
	repo, st := newStoreRepo(t)
	if sites != nil {
		st.put(t, entity.SitesKey, sites)
	}

	f := &fixture{
		store:    st,
		registry: usecase.NewSiteRegistry(repo, usecase.SiteRegistryOptions{}),
		factory:  surface.NewHeadlessFactory(),
		state:    portmocks.NewMockPanelStateStore(t),
		theme:    portmocks.NewMockThemeApplier(t),
		nav:      portmocks.NewMockNavigationRenderer(t),
	}
	f.mux = panel.NewMultiplexer(f.factory, nil)

	f.state.EXPECT().LoadCurrentURL(mock.Anything).Return(saved, nil).Maybe()
	f.state.EXPECT().SaveCurrentURL(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.theme.EXPECT().ApplyTheme(mock.Anything, mock.Anything).Run(func(_ context.Context, th entity.Theme) {
		f.mu.Lock()
		f.themes = append(f.themes, th)
		f.mu.Unlock()
	}).Maybe()
	f.nav.EXPECT().RenderNavigation(mock.Anything, mock.Anything).Run(func(_ context.Context, items []entity.NavItem) {
		f.mu.Lock()
		f.rendered = append(f.rendered, items)
		f.mu.Unlock()
	}).Maybe()

	f.session = panel.NewSession(panel.SessionDeps{
		Registry:    f.registry,
		Multiplexer: f.mux,
		State:       f.state,
		Theme:       f.theme,
		Nav:         f.nav,
	})
	return f
}

func (f *fixture) lastRendered() []entity.NavItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rendered) == 0 {
		return nil
	}
	return f.rendered[len(f.rendered)-1]
}

func (f *fixture) renderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rendered)
}

func (f *fixture) lastTheme() entity.Theme {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.themes) == 0 {
		return ""
	}
	return f.themes[len(f.themes)-1]
}

func activeCount(items []entity.NavItem) int {
	n := 0
	for _, it := range items {
		if it.Active {
			n++
		}
	}
	return n
}
