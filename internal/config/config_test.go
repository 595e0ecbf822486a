package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
dbname = "barbers"
password = "from-file"

[auth]
jwt_secret = "file-secret"

[reminders]
schedule = "0 * * * *"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "0 * * * *", cfg.Reminders.Schedule)
	assert.Equal(t, "America/Sao_Paulo", cfg.Time.Location)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("AUTH_JWT_SECRET", "s")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "envhost", cfg.Database.Host)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	assert.Error(t, cfg.Validate())

	cfg.Database.Host = "h"
	cfg.Database.DBName = "d"
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
