package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/microcomp/pkg/models"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir), 0755))
	content := "search:\n  page_size: 50\n  sort_direction: desc\nbackend:\n  url: http://search.local\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, ConfigFile), []byte(content), 0644))

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, settings.Search.PageSize)
	assert.Equal(t, "desc", settings.Search.SortDirection)
	assert.Equal(t, "http://search.local", settings.Backend.URL)
	// untouched keys keep their defaults
	assert.Equal(t, 3, settings.Backend.RetryMax)
	assert.Equal(t, 6, settings.UI.MaxSuggestions)
}

func TestLoad_ExplicitPath(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: 127.0.0.1:9000\n"), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", settings.Server.Addr)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MICROCOMP_BACKEND_URL", "http://env.local")
	t.Setenv("MICROCOMP_SEARCH_PAGE_SIZE", "25")

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://env.local", settings.Backend.URL)
	assert.Equal(t, 25, settings.Search.PageSize)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// register cleanup for the variable godotenv is about to set
	t.Setenv("MICROCOMP_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("MICROCOMP_LOG_LEVEL"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("MICROCOMP_LOG_LEVEL=debug\n"), 0644))

	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.Log.Level)
}

func TestSaveAndLoad(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", ConfigFile)

	settings := models.DefaultSettings()
	settings.UI.Placeholder = "Find documents"
	settings.Vocabulary.Path = "/tmp/vocab.yaml"
	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestInit(t *testing.T) {
	root := t.TempDir()

	path, err := Init(root, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, Dir, ConfigFile), path)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(root, Dir, VocabularyFile))

	_, err = Init(root, false)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	_, err = Init(root, true)
	assert.NoError(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldwd))
	})
}
