package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/eventbus"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "redux", cfg.DefaultQuery)
	assert.Equal(t, "https://hn.algolia.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 100, cfg.API.HitsPerPage)
	assert.Equal(t, "none", cfg.UI.DefaultSort)
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigService()

	cfg, err := cs.LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_query")
	assert.Contains(t, string(data), "redux")
	assert.Contains(t, string(data), "[api]")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService()

	cfg := DefaultConfig()
	cfg.DefaultQuery = "golang generics"
	cfg.API.HitsPerPage = 20
	cfg.UI.DefaultSort = "points"
	cfg.UI.ShowURL = false
	cfg.UI.OpenCommand = "firefox"
	cfg.Log.Level = "debug"

	require.NoError(t, cs.SaveToPath(cfg, path))
	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "default_query = \"rust\"\n\n[api]\nhits_per_page = 10\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "rust", cfg.DefaultQuery)
	assert.Equal(t, 10, cfg.API.HitsPerPage)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.True(t, cfg.UI.ShowURL)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, NewConfigService().SaveToPath(DefaultConfig(), path))

	t.Setenv("HNSEARCH_API_HITS_PER_PAGE", "25")
	t.Setenv("HNSEARCH_DEFAULT_QUERY", "zig")

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.API.HitsPerPage)
	assert.Equal(t, "zig", cfg.DefaultQuery)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"hits_per_page": "[api]\nhits_per_page = 0\n",
		"default_sort":  "[ui]\ndefault_sort = \"date\"\n",
		"default_query": "default_query = \"  \"\n",
		"syntax":        "default_query = \n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := NewConfigService().LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.HitsPerPage = 1001
	assert.ErrorContains(t, cfg.Validate(), "hits_per_page")

	cfg = DefaultConfig()
	cfg.API.BaseURL = ""
	assert.ErrorContains(t, cfg.Validate(), "base_url")
}

func TestLogFilePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/tmp/hn", "hnsearch.log"), cfg.LogFilePath("/tmp/hn/config.toml"))

	cfg.Log.File = "/var/log/hn.log"
	assert.Equal(t, "/var/log/hn.log", cfg.LogFilePath("/tmp/hn/config.toml"))
}

func TestConfigEventsArePublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	saved := make(chan eventbus.ConfigSavedEvent, 1)
	loaded := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent)
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(bus).LoadOrCreate(path)
	require.NoError(t, err)

	select {
	case ev := <-saved:
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no ConfigSavedEvent")
	}
	select {
	case ev := <-loaded:
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, "redux", ev.DefaultQuery)
	case <-time.After(2 * time.Second):
		t.Fatal("no ConfigLoadedEvent")
	}
}
