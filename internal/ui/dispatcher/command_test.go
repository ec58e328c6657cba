package dispatcher

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/domain/entity"
	repomocks "github.com/bnema/toolip/internal/domain/repository/mocks"
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

func newDispatcher(t *testing.T) (*Dispatcher, *store) {
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
		st.values[key] = append([]byte(nil), value...)
		return nil
	}).Maybe()

	ctx := testContext()
	registry := usecase.NewSiteRegistry(repo, usecase.SiteRegistryOptions{})
	require.True(t, registry.SaveSites(ctx, entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "A", Icon: "a.png"},
		{ID: "b", URL: "https://b.example", Title: "B", Icon: "b.png"},
		{ID: "c", URL: "https://c.example", Title: "C", Icon: "c.png"},
	}))

	editor := usecase.NewSiteEditor(registry)
	editor.Load(ctx)
	d := New(editor, usecase.NewChangeThemeUseCase(registry, nil, nil))
	d.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return d, st
}

func (s *store) storedSites(t *testing.T) entity.SiteList {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out entity.SiteList
	require.NoError(t, json.Unmarshal(s.values[entity.SitesKey], &out))
	return out
}

func ids(l entity.SiteList) []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = string(s.ID)
	}
	return out
}

func TestDispatch_AddThenSave(t *testing.T) {
	ctx := testContext()
	d, st := newDispatcher(t)

	res := d.Dispatch(ctx, Command{Kind: AddSite, Form: usecase.SiteForm{URL: "https://example.com", Title: "Example"}})
	require.NoError(t, res.Err)
	assert.True(t, res.OK)
	assert.Len(t, res.Sites, 4)
	assert.Equal(t, "Example", res.Site.Title)
	assert.Len(t, st.storedSites(t), 3, "nothing persisted before save")

	res = d.Dispatch(ctx, Command{Kind: SaveSites})
	assert.True(t, res.OK)
	assert.Len(t, st.storedSites(t), 4)
}

func TestDispatch_ResultFillsIconsWithoutStoringThem(t *testing.T) {
	ctx := testContext()
	d, st := newDispatcher(t)

	res := d.Dispatch(ctx, Command{Kind: ImportSites, Payload: []byte(`{"sites":[{"id":"z","url":"https://z.example","title":"Z"}]}`)})
	require.True(t, res.OK)
	require.Len(t, res.Sites, 1)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=z.example&sz=64", res.Sites[0].Icon)

	res = d.Dispatch(ctx, Command{Kind: SaveSites})
	require.True(t, res.OK)
	assert.Empty(t, st.storedSites(t)[0].Icon)
}

func TestDispatch_AddRejectsInvalidForm(t *testing.T) {
	d, _ := newDispatcher(t)

	res := d.Dispatch(testContext(), Command{Kind: AddSite, Form: usecase.SiteForm{URL: "nope", Title: "X"}})
	assert.ErrorIs(t, res.Err, usecase.ErrInvalidURL)
	assert.False(t, res.OK)
	assert.Len(t, res.Sites, 3)
}

func TestDispatch_EditKeepsID(t *testing.T) {
	d, _ := newDispatcher(t)

	res := d.Dispatch(testContext(), Command{
		Kind:  EditSite,
		Index: 1,
		Form:  usecase.SiteForm{URL: "https://bee.example", Title: "Bee"},
	})
	require.NoError(t, res.Err)
	assert.Equal(t, entity.SiteID("b"), res.Site.ID)
	assert.Equal(t, "Bee", res.Sites[1].Title)
	assert.Equal(t, -1, res.EditingIndex)
}

func TestDispatch_EditFailureLeavesEditMode(t *testing.T) {
	d, _ := newDispatcher(t)

	res := d.Dispatch(testContext(), Command{Kind: EditSite, Index: 0, Form: usecase.SiteForm{URL: "https://a.example"}})
	assert.ErrorIs(t, res.Err, usecase.ErrMissingFields)
	assert.Equal(t, -1, res.EditingIndex)

	res = d.Dispatch(testContext(), Command{Kind: EditSite, Index: 9})
	assert.ErrorIs(t, res.Err, entity.ErrIndexOutOfRange)
}

func TestDispatch_DeleteAndReorder(t *testing.T) {
	ctx := testContext()
	d, _ := newDispatcher(t)

	res := d.Dispatch(ctx, Command{Kind: ReorderSite, Index: 0, Target: 2})
	require.NoError(t, res.Err)
	assert.True(t, res.OK)
	assert.Equal(t, []string{"b", "c", "a"}, ids(res.Sites))

	res = d.Dispatch(ctx, Command{Kind: DeleteSite, Index: 1})
	require.NoError(t, res.Err)
	assert.Equal(t, []string{"b", "a"}, ids(res.Sites))

	res = d.Dispatch(ctx, Command{Kind: DeleteSite, Index: 5})
	assert.ErrorIs(t, res.Err, entity.ErrIndexOutOfRange)
}

func TestDispatch_DiscardRestoresStoredList(t *testing.T) {
	ctx := testContext()
	d, _ := newDispatcher(t)

	d.Dispatch(ctx, Command{Kind: DeleteSite, Index: 0})
	res := d.Dispatch(ctx, Command{Kind: DiscardChanges})
	assert.True(t, res.OK)
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Sites))
}

func TestDispatch_ExportImport(t *testing.T) {
	ctx := testContext()
	d, st := newDispatcher(t)

	res := d.Dispatch(ctx, Command{Kind: ExportSites})
	require.NoError(t, res.Err)
	assert.Equal(t, "toolip-settings-2025-06-01.json", res.Filename)

	var env entity.ExportEnvelope
	require.NoError(t, json.Unmarshal(res.Payload, &env))
	assert.Equal(t, []string{"a", "b", "c"}, ids(env.Sites))

	res = d.Dispatch(ctx, Command{Kind: ImportSites, Payload: []byte(`{"foo":1}`)})
	assert.False(t, res.OK)
	assert.Len(t, st.storedSites(t), 3)

	res = d.Dispatch(ctx, Command{Kind: ImportSites, Payload: []byte(`{"sites":[{"id":"z","url":"https://z.example","title":"Z"}]}`)})
	assert.True(t, res.OK)
	assert.Equal(t, []string{"z"}, ids(res.Sites))
}

func TestDispatch_ResetAndTheme(t *testing.T) {
	ctx := testContext()
	d, st := newDispatcher(t)

	res := d.Dispatch(ctx, Command{Kind: ResetSites})
	assert.True(t, res.OK)
	assert.Len(t, res.Sites, 13)

	res = d.Dispatch(ctx, Command{Kind: ChangeTheme, Theme: entity.ThemeDark})
	assert.True(t, res.OK)
	st.mu.Lock()
	assert.JSONEq(t, `"dark"`, string(st.values[entity.ThemeKey]))
	st.mu.Unlock()

	res = d.Dispatch(ctx, Command{Kind: ChangeTheme, Theme: "neon"})
	assert.False(t, res.OK)
}

func TestDispatch_UnknownKind(t *testing.T) {
	d, _ := newDispatcher(t)

	res := d.Dispatch(testContext(), Command{Kind: "explode"})
	assert.Error(t, res.Err)
	assert.Len(t, res.Sites, 3)
}
