package styles

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/toolip/internal/domain/entity"
)

func TestNewTheme(t *testing.T) {
	dark := NewTheme(entity.ThemeDark)
	assert.Equal(t, entity.ThemeDark, dark.Name)
	assert.Equal(t, lipgloss.Color("#0a0a0b"), dark.Background)

	light := NewTheme(entity.ThemeLight)
	assert.Equal(t, lipgloss.Color("#ffffff"), light.Background)

	assert.Equal(t, entity.ThemeLight, NewTheme("neon").Name)
}

func TestSiteRows(t *testing.T) {
	rows := SiteRows(entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "A", Category: "ai"},
		{ID: "b", URL: "https://b.example", Title: "B"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "A", "https://a.example", "ai", "a"}, []string(rows[0]))
	assert.Equal(t, "-", rows[1][3])
}

func TestRenderSiteTable(t *testing.T) {
	out := RenderSiteTable(NewTheme(entity.ThemeDark), entity.SiteList{
		{ID: "a", URL: "https://a.example", Title: "Alpha"},
	})
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Title")
}

func TestRenderMessages(t *testing.T) {
	theme := NewTheme(entity.ThemeLight)

	assert.Contains(t, theme.RenderSuccess("saved %d sites", 3), "saved 3 sites")
	assert.Contains(t, theme.RenderError(errors.New("boom")), "boom")
	assert.True(t, strings.Contains(theme.RenderHint("run %s", "toolip sites list"), "toolip sites list"))
}
