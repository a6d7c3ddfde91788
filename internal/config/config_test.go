package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planner/internal/config"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_PATH", path)
}

func TestLoadConfig(t *testing.T) {
	writeConfig(t, `
service:
  name: planner
  environment: test
  version: 1.2.3
database:
  driver: postgres
  host: db.internal
  port: 5432
  name: planner
  user: planner
  password: secret
server:
  http:
    host: 0.0.0.0
    port: 9000
log:
  level: debug
  format: console
  output: stderr
export:
  dir: /tmp/exports
`)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "planner", cfg.Service.Name)
	assert.Equal(t, "1.2.3", cfg.Service.Version)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 9000, cfg.Server.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}

func TestLoadConfigDefaults(t *testing.T) {
	writeConfig(t, "service:\n  name: planner\n")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "db/planner.db", cfg.Database.Path)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, 8000, cfg.Server.HTTP.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		Name:     "planner",
		User:     "planner",
		Password: "secret",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=planner password=secret dbname=planner",
		cfg.DSN())
}
