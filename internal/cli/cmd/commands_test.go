package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against an isolated XDG tree.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	closeApp()
	return out.String(), err
}

func isolateCLI(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("TOOLIP_LOG_LEVEL", "")
	t.Setenv("TOOLIP_DATABASE_PATH", "")

	siteTitle, siteIcon, siteURL, resetYes = "", "", "", false
	schemaConfig = false
	return root
}

func TestCLI_ThemeRoundTrip(t *testing.T) {
	isolateCLI(t)

	out, err := runCLI(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = runCLI(t, "theme", "dark")
	require.NoError(t, err)

	out, err = runCLI(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = runCLI(t, "theme", "purple")
	assert.Error(t, err)
}

func TestCLI_AddMoveRemove(t *testing.T) {
	isolateCLI(t)

	_, err := runCLI(t, "sites", "add", "https://example.org", "-t", "Example Org")
	require.NoError(t, err)
	siteTitle = ""

	out, err := runCLI(t, "export", "-")
	require.NoError(t, err)
	sites := decodeSites(t, out)
	require.NotEmpty(t, sites)
	last := len(sites)
	assert.Equal(t, "https://example.org", sites[last-1]["url"])

	_, err = runCLI(t, "sites", "move", strconv.Itoa(last), "1")
	require.NoError(t, err)

	out, err = runCLI(t, "export", "-")
	require.NoError(t, err)
	sites = decodeSites(t, out)
	assert.Equal(t, "Example Org", sites[0]["title"])

	_, err = runCLI(t, "sites", "remove", "1")
	require.NoError(t, err)

	out, err = runCLI(t, "export", "-")
	require.NoError(t, err)
	assert.Len(t, decodeSites(t, out), last-1)

	_, err = runCLI(t, "sites", "remove", "99")
	assert.Error(t, err)
}

func TestCLI_ImportRejectsInvalidFile(t *testing.T) {
	root := isolateCLI(t)

	bad := filepath.Join(root, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"theme":"dark"}`), 0o644))
	_, err := runCLI(t, "import", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import rejected")

	good := filepath.Join(root, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"sites":[{"id":"x","url":"https://x.example","title":"X","icon":"x.png"}]}`), 0o644))
	_, err = runCLI(t, "import", good)
	require.NoError(t, err)

	out, err := runCLI(t, "export", "-")
	require.NoError(t, err)
	sites := decodeSites(t, out)
	require.Len(t, sites, 1)
	assert.Equal(t, "https://x.example", sites[0]["url"])
}

func TestCLI_ExportToFile(t *testing.T) {
	root := isolateCLI(t)
	target := filepath.Join(root, "backup.json")

	_, err := runCLI(t, "export", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotEmpty(t, decodeSites(t, string(data)))
}

func TestCLI_SchemaNeedsNoDatabase(t *testing.T) {
	root := isolateCLI(t)

	out, err := runCLI(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"sites"`)
	assert.NoDirExists(t, filepath.Join(root, "data", "toolip"))
}

func decodeSites(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var envelope struct {
		Sites []map[string]any `json:"sites"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	return envelope.Sites
}
