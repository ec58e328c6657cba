package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/domain/entity"
)

func newLoadedEditor(t *testing.T, stored entity.SiteList) (*usecase.SiteEditor, *memoryRepo) {
	t.Helper()
	ctx := testContext()
	repo, mem := newMemoryRepo(t)
	reg := newRegistry(repo)
	if stored != nil {
		require.True(t, reg.SaveSites(ctx, stored))
		mem.writes = 0
	}
	editor := usecase.NewSiteEditor(reg)
	editor.Load(ctx)
	return editor, mem
}

func fourSites() entity.SiteList {
	return entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "A", Icon: "a.png"},
		{ID: "b", URL: "https://b.example", Title: "B", Icon: "b.png"},
		{ID: "c", URL: "https://c.example", Title: "C", Icon: "c.png"},
		{ID: "d", URL: "https://d.example", Title: "D", Icon: "d.png"},
	}
}

func siteIDs(l entity.SiteList) []entity.SiteID {
	out := make([]entity.SiteID, len(l))
	for i, s := range l {
		out[i] = s.ID
	}
	return out
}

func TestSiteEditor_AddToDefaults(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, nil)
	require.Len(t, editor.Sites(), 13)

	site, err := editor.Submit(ctx, usecase.SiteForm{URL: "https://example.com", Title: "Example"})
	require.NoError(t, err)
	require.True(t, editor.Save(ctx))

	stored := mem.sites(t)
	require.Len(t, stored, 14)
	last := stored[13]
	assert.Equal(t, site, last)
	assert.Equal(t, "https://example.com", last.URL)
	assert.Equal(t, "Example", last.Title)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=example.com&sz=64", last.Icon)
	assert.Equal(t, entity.CategoryCustom, last.Category)
	assert.True(t, strings.HasPrefix(string(last.ID), "site_"))
}

func TestSiteEditor_SubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		form usecase.SiteForm
		want error
	}{
		{name: "missing url", form: usecase.SiteForm{Title: "X"}, want: usecase.ErrMissingFields},
		{name: "missing title", form: usecase.SiteForm{URL: "https://x.example"}, want: usecase.ErrMissingFields},
		{name: "blank title", form: usecase.SiteForm{URL: "https://x.example", Title: "   "}, want: usecase.ErrMissingFields},
		{name: "not a url", form: usecase.SiteForm{URL: "not a url", Title: "X"}, want: usecase.ErrInvalidURL},
		{name: "no host", form: usecase.SiteForm{URL: "mailto:someone@example.com", Title: "X"}, want: usecase.ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, _ := newLoadedEditor(t, fourSites())

			_, err := editor.Submit(testContext(), tt.form)
			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, editor.Sites(), 4)
		})
	}
}

func TestSiteEditor_EditKeepsID(t *testing.T) {
	ctx := testContext()
	editor, _ := newLoadedEditor(t, fourSites())

	form, err := editor.BeginEdit(1)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", form.URL)
	assert.True(t, editor.IsEditing())

	form.Title = "Bee"
	form.Icon = ""
	site, err := editor.Submit(ctx, form)
	require.NoError(t, err)

	assert.Equal(t, entity.SiteID("b"), site.ID)
	assert.Equal(t, "Bee", site.Title)
	assert.Equal(t, entity.CategoryCustom, site.Category)
	assert.Contains(t, site.Icon, "domain=b.example")
	assert.False(t, editor.IsEditing())
	assert.Equal(t, []entity.SiteID{"a", "b", "c", "d"}, siteIDs(editor.Sites()))
}

func TestSiteEditor_BeginEditOutOfRange(t *testing.T) {
	editor, _ := newLoadedEditor(t, fourSites())

	_, err := editor.BeginEdit(4)
	assert.ErrorIs(t, err, entity.ErrIndexOutOfRange)
	assert.Equal(t, -1, editor.EditingIndex())
}

func TestSiteEditor_DeleteShiftsEditingIndex(t *testing.T) {
	tests := []struct {
		name        string
		editing     int
		deleted     int
		wantEditing int
	}{
		{name: "delete before edited", editing: 2, deleted: 0, wantEditing: 1},
		{name: "delete edited", editing: 2, deleted: 2, wantEditing: -1},
		{name: "delete after edited", editing: 1, deleted: 3, wantEditing: 1},
		{name: "no edit", editing: -1, deleted: 1, wantEditing: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			editor, _ := newLoadedEditor(t, fourSites())
			if tt.editing >= 0 {
				_, err := editor.BeginEdit(tt.editing)
				require.NoError(t, err)
			}
			editedID := entity.SiteID("")
			if tt.editing >= 0 {
				editedID = editor.Sites()[tt.editing].ID
			}

			require.NoError(t, editor.Delete(ctx, tt.deleted))

			assert.Equal(t, tt.wantEditing, editor.EditingIndex())
			assert.Len(t, editor.Sites(), 3)
			if tt.wantEditing >= 0 {
				assert.Equal(t, editedID, editor.Sites()[tt.wantEditing].ID)
			}
		})
	}
}

func TestSiteEditor_DragAndDrop(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, fourSites())

	require.NoError(t, editor.StartDrag(0))
	changed, err := editor.Drop(ctx, 2)
	require.NoError(t, err)
	editor.EndDrag()

	assert.True(t, changed)
	assert.Equal(t, []entity.SiteID{"b", "c", "a", "d"}, siteIDs(editor.Sites()))
	assert.Equal(t, -1, editor.DraggedIndex())
	assert.Zero(t, mem.writes, "reorder stays local until save")

	require.True(t, editor.Save(ctx))
	assert.Equal(t, []entity.SiteID{"b", "c", "a", "d"}, siteIDs(mem.sites(t)))
}

func TestSiteEditor_DropOnSelfIsNoop(t *testing.T) {
	ctx := testContext()
	editor, _ := newLoadedEditor(t, fourSites())

	require.NoError(t, editor.StartDrag(1))
	changed, err := editor.Drop(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []entity.SiteID{"a", "b", "c", "d"}, siteIDs(editor.Sites()))
}

func TestSiteEditor_DropWithoutDrag(t *testing.T) {
	editor, _ := newLoadedEditor(t, fourSites())

	changed, err := editor.Drop(testContext(), 1)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSiteEditor_MoveKeepsEditedSite(t *testing.T) {
	ctx := testContext()
	editor, _ := newLoadedEditor(t, fourSites())

	_, err := editor.BeginEdit(2)
	require.NoError(t, err)

	changed, err := editor.Move(ctx, 0, 3)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, 1, editor.EditingIndex())
	assert.Equal(t, entity.SiteID("c"), editor.Sites()[editor.EditingIndex()].ID)
}

func TestSiteEditor_Discard(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, fourSites())

	require.NoError(t, editor.Delete(ctx, 0))
	_, err := editor.BeginEdit(0)
	require.NoError(t, err)

	editor.Discard(ctx)

	assert.Len(t, editor.Sites(), 4)
	assert.False(t, editor.IsEditing())
	assert.Zero(t, mem.writes)
}

func TestSiteEditor_ImportReloads(t *testing.T) {
	ctx := testContext()
	editor, _ := newLoadedEditor(t, fourSites())

	ok := editor.Import(ctx, []byte(`{"sites":[{"id":"z","url":"https://z.example","title":"Z"}]}`))
	require.True(t, ok)

	sites := editor.Sites()
	require.Len(t, sites, 1)
	assert.Equal(t, entity.SiteID("z"), sites[0].ID)
}

func TestSiteEditor_ImportRejectedKeepsList(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, fourSites())

	assert.False(t, editor.Import(ctx, []byte(`{"foo":1}`)))
	assert.Len(t, editor.Sites(), 4)
	assert.Zero(t, mem.writes)
}

func TestSiteEditor_Reset(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, fourSites())

	editor.Reset(ctx)

	assert.Len(t, editor.Sites(), 13)
	assert.Len(t, mem.sites(t), 13)
}

func TestSiteEditor_SaveKeepsIconsUnset(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "A"},
		{ID: "b", URL: "https://b.example", Title: "B", Icon: "b.png"},
	})

	require.True(t, editor.Save(ctx))

	stored := mem.sites(t)
	require.Len(t, stored, 2)
	assert.Empty(t, stored[0].Icon)
	assert.Equal(t, "b.png", stored[1].Icon)

	shown := editor.DisplaySites()
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=a.example&sz=64", shown[0].Icon)
	assert.Equal(t, "b.png", shown[1].Icon)
	assert.Empty(t, editor.Sites()[0].Icon)
}

func TestSiteEditor_ResetThenSaveKeepsIconsUnset(t *testing.T) {
	ctx := testContext()
	editor, mem := newLoadedEditor(t, fourSites())

	editor.Reset(ctx)
	require.True(t, editor.Save(ctx))

	for _, site := range mem.sites(t) {
		assert.NotContains(t, site.Icon, "s2/favicons", site.ID)
	}
}

func TestSiteEditor_AutoFill(t *testing.T) {
	editor, _ := newLoadedEditor(t, fourSites())

	got := editor.AutoFill(usecase.SiteForm{URL: "https://www.github.com/bnema"})
	assert.Equal(t, "Github", got.Title)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=www.github.com&sz=64", got.Icon)

	kept := editor.AutoFill(usecase.SiteForm{URL: "https://docs.rs", Title: "Rust docs", Icon: "mine.png"})
	assert.Equal(t, "Rust docs", kept.Title)
	assert.Equal(t, "mine.png", kept.Icon)

	bad := usecase.SiteForm{URL: "::nope"}
	assert.Equal(t, bad, editor.AutoFill(bad))
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2025, 1, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "toolip-settings-2025-01-02.json", usecase.ExportFilename(at))
}
