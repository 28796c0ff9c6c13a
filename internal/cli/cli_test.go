package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errW bytes.Buffer
	root := New(&out, &errW)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errW.String(), err
}

func writeDocument(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dub.json")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeDocument(t, `{"children": [
		{"name": "name", "values": ["mylib"], "line": 1},
		{"name": "license", "values": ["MIT"], "line": 2},
		{"name": "libs", "values": ["curl"], "line": 3}
	]}`)

	out, _, err := runCommand(t, "parse", path)
	require.NoError(t, err)

	var rec struct {
		Name          string `json:"name"`
		License       string `json:"license"`
		BuildSettings struct {
			TargetType string              `json:"targetType"`
			Libs       map[string][]string `json:"libs"`
		} `json:"buildSettings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "mylib", rec.Name)
	assert.Equal(t, "MIT", rec.License)
	assert.Equal(t, "autodetect", rec.BuildSettings.TargetType)
	assert.Equal(t, []string{"curl"}, rec.BuildSettings.Libs[""])
}

func TestParseCommandReportsLocation(t *testing.T) {
	path := writeDocument(t, `{"children": [
		{"name": "name", "values": ["mylib"], "line": 1},
		{"name": "license", "values": ["MIT", "extra"], "line": 2}
	]}`)

	_, _, err := runCommand(t, "parse", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+"(2)")
}

func TestVersionsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/packages/vibe-d/versions", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"1.1.0", "1.0.0"})
	}))
	t.Cleanup(srv.Close)

	out, _, err := runCommand(t, "--registry", srv.URL, "versions", "vibe-d")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n1.1.0\n", out)
}

func TestConfigFlagOverridesSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"1.0.0"})
	}))
	t.Cleanup(srv.Close)

	settings := filepath.Join(t.TempDir(), "recipekit.hcl")
	require.NoError(t, os.WriteFile(settings, []byte(`
registry {
  url = "`+srv.URL+`"
}
logging {
  level = "error"
}
`), 0o644))

	out, _, err := runCommand(t, "--config", settings, "versions", "vibe-d")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0\n", out)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, _, err := runCommand(t, "--config", filepath.Join(t.TempDir(), "absent.hcl"), "versions", "vibe-d")
	assert.Error(t, err)
}
