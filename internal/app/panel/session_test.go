package panel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/app/panel"
	"github.com/bnema/toolip/internal/domain/entity"
)

func TestSession_LoadRestoresSavedURL(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "https://b.example")

	require.NoError(t, f.session.Load(ctx))

	assert.Equal(t, "https://b.example", f.session.CurrentURL())
	assert.Equal(t, "https://b.example", f.mux.Current())
	assert.Equal(t, entity.ThemeLight, f.lastTheme())

	nav := f.lastRendered()
	require.Len(t, nav, 3)
	assert.Equal(t, 1, activeCount(nav))
	assert.True(t, nav[1].Active)
}

func TestSession_LoadFallsBackToFirst(t *testing.T) {
	tests := []struct {
		name  string
		saved string
	}{
		{name: "nothing saved", saved: ""},
		{name: "saved url no longer listed", saved: "https://gone.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newFixture(t, threeSites(), tt.saved)

			require.NoError(t, f.session.Load(ctx))

			assert.Equal(t, "https://a.example", f.session.CurrentURL())
			assert.Equal(t, 0, panel.ActiveIndex(f.session.Navigation()))
		})
	}
}

func TestSession_LoadDefaultsWhenNothingStored(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, nil, "")

	require.NoError(t, f.session.Load(ctx))

	assert.Len(t, f.session.Sites(), 13)
	assert.Equal(t, "https://chatgpt.com", f.session.CurrentURL())
}

func TestSession_LoadAppliesStoredTheme(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	f.store.put(t, entity.ThemeKey, "dark")

	require.NoError(t, f.session.Load(ctx))

	assert.Equal(t, entity.ThemeDark, f.session.Theme())
	assert.Equal(t, entity.ThemeDark, f.lastTheme())
}

func TestSession_OpenPersistsAndReusesFrames(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	require.NoError(t, f.session.Open(ctx, "https://c.example"))
	require.NoError(t, f.session.Open(ctx, "https://a.example"))

	f.state.AssertCalled(t, "SaveCurrentURL", mock.Anything, "https://c.example")
	assert.Equal(t, "https://a.example", f.session.CurrentURL())

	stats := f.session.Stats()
	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Reused)

	nav := f.lastRendered()
	assert.Equal(t, 1, activeCount(nav))
	assert.True(t, nav[0].Active)
}

func TestSession_OpenIndex(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	require.NoError(t, f.session.OpenIndex(ctx, 2))
	assert.Equal(t, "https://c.example", f.session.CurrentURL())

	assert.ErrorIs(t, f.session.OpenIndex(ctx, 3), entity.ErrIndexOutOfRange)
}

func TestSession_DuplicateURLsMarkOneActive(t *testing.T) {
	ctx := testContext()
	sites := append(threeSites(), entity.Site{ID: "dup", URL: "https://b.example", Title: "B again"})
	f := newFixture(t, sites, "https://b.example")

	require.NoError(t, f.session.Load(ctx))

	nav := f.session.Navigation()
	assert.Equal(t, 1, activeCount(nav))
	assert.True(t, nav[1].Active)
	assert.False(t, nav[3].Active)
}

func TestSession_ReloadKeepsCurrentWhenListed(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "https://b.example")
	require.NoError(t, f.session.Load(ctx))

	updated := append(threeSites(), entity.Site{ID: "d", URL: "https://d.example", Title: "D", Icon: "d.png"})
	f.store.put(t, entity.SitesKey, updated)

	require.NoError(t, f.session.ReloadSites(ctx))

	assert.Equal(t, "https://b.example", f.session.CurrentURL())
	assert.Len(t, f.lastRendered(), 4)
	assert.Equal(t, 1, f.session.Stats().Created, "frame cache is untouched")
}

func TestSession_ReloadFallsBackWhenCurrentRemoved(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "https://a.example")
	require.NoError(t, f.session.Load(ctx))

	f.store.put(t, entity.SitesKey, threeSites()[1:])

	require.NoError(t, f.session.ReloadSites(ctx))

	assert.Equal(t, "https://b.example", f.session.CurrentURL())
	assert.Equal(t, 0, panel.ActiveIndex(f.lastRendered()))
}

func TestSession_LoadSurvivesUnopenableFirstSite(t *testing.T) {
	ctx := testContext()
	sites := entity.SiteList{
		{ID: "rel", URL: "intranet/home", Title: "Intranet", Icon: "i.png"},
		{ID: "a", URL: "https://a.example", Title: "A", Icon: "a.png"},
	}
	f := newFixture(t, sites, "")

	require.NoError(t, f.session.Load(ctx))

	assert.Equal(t, "intranet/home", f.session.CurrentURL())
	nav := f.lastRendered()
	require.Len(t, nav, 2)
	assert.Equal(t, 0, panel.ActiveIndex(nav))
	assert.Equal(t, 0, f.factory.Live())
	f.state.AssertNotCalled(t, "SaveCurrentURL", mock.Anything, "intranet/home")

	require.NoError(t, f.session.OpenIndex(ctx, 1))
	assert.Equal(t, "https://a.example", f.mux.Current())
	assert.Equal(t, 1, panel.ActiveIndex(f.session.Navigation()))
}

func TestSession_ReloadSurvivesUnopenableFirstSite(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "https://c.example")
	require.NoError(t, f.session.Load(ctx))

	f.store.put(t, entity.SitesKey, entity.SiteList{
		{ID: "rel", URL: "intranet/home", Title: "Intranet", Icon: "i.png"},
		threeSites()[0],
	})

	require.NoError(t, f.session.ReloadSites(ctx))

	current := f.session.CurrentURL()
	assert.Equal(t, "intranet/home", current)
	assert.True(t, f.session.Sites().ContainsURL(current))

	nav := f.session.Navigation()
	require.Len(t, nav, 2)
	assert.Equal(t, 0, panel.ActiveIndex(nav))
	assert.Equal(t, nav, f.lastRendered())
}

func TestSession_OpenReportsUnopenableSite(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))

	assert.Error(t, f.session.Open(ctx, "relative/path"))
	assert.Equal(t, "relative/path", f.session.CurrentURL())
	assert.Equal(t, -1, panel.ActiveIndex(f.session.Navigation()))
}

func TestSession_ApplyThemeLeavesFramesAlone(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))
	before := f.session.Stats()

	f.session.ApplyTheme(ctx, entity.ThemeDark)

	assert.Equal(t, entity.ThemeDark, f.session.Theme())
	assert.Equal(t, before, f.session.Stats())
	assert.Equal(t, "https://a.example", f.session.CurrentURL())
}

func TestSession_CloseReleasesSurfaces(t *testing.T) {
	ctx := testContext()
	f := newFixture(t, threeSites(), "")
	require.NoError(t, f.session.Load(ctx))
	require.NoError(t, f.session.Open(ctx, "https://b.example"))

	f.session.Close(ctx)

	assert.Zero(t, f.factory.Live())
}

func TestBuildNavigation(t *testing.T) {
	items := panel.BuildNavigation(threeSites(), "https://c.example")
	require.Len(t, items, 3)
	assert.Equal(t, entity.SiteID("a"), items[0].SiteID)
	assert.Equal(t, "a.png", items[0].Icon)
	assert.Equal(t, 2, panel.ActiveIndex(items))

	assert.Equal(t, -1, panel.ActiveIndex(panel.BuildNavigation(threeSites(), "")))
}
