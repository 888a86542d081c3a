package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoadWithoutEnvFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err, "a missing .env must not prevent startup")

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, "qldsv_session", cfg.Session.CookieName)
	assert.InDelta(t, 0.1, cfg.Grading.AttendanceWeight, 1e-9)
	assert.InDelta(t, 0.3, cfg.Grading.MidtermWeight, 1e-9)
	assert.InDelta(t, 0.6, cfg.Grading.FinalWeight, 1e-9)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\nSESSION_BACKEND=redis\n"), 0o600))
	chdir(t, dir)
	t.Cleanup(func() {
		// godotenv exports the file into the process environment.
		os.Unsetenv("PORT")
		os.Unsetenv("SESSION_BACKEND")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
}
