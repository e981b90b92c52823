package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EXPRTREE_DOTENV_TEST=loaded\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Setenv("EXPRTREE_DOTENV_TEST", "")
	require.NoError(t, os.Unsetenv("EXPRTREE_DOTENV_TEST"))

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "loaded", os.Getenv("EXPRTREE_DOTENV_TEST"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("production", ""))
}

func TestHelpers(t *testing.T) {
	t.Setenv("EXPRTREE_S", "")
	assert.Equal(t, "def", String("EXPRTREE_S", "def"))
	t.Setenv("EXPRTREE_S", "set")
	assert.Equal(t, "set", String("EXPRTREE_S", "def"))

	t.Setenv("EXPRTREE_B", "true")
	b, err := Bool("EXPRTREE_B", false)
	require.NoError(t, err)
	assert.True(t, b)
	t.Setenv("EXPRTREE_B", "maybe")
	_, err = Bool("EXPRTREE_B", false)
	assert.Error(t, err)

	t.Setenv("EXPRTREE_D", "")
	d, err := Duration("EXPRTREE_D", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
	t.Setenv("EXPRTREE_D", "250ms")
	d, err = Duration("EXPRTREE_D", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
	t.Setenv("EXPRTREE_D", "-1s")
	_, err = Duration("EXPRTREE_D", time.Second)
	assert.Error(t, err)
}
