package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
server:
  port: 9090
database:
  host: db.internal
  port: 3306
  user: app
  password: hunter2
  name: balcao
  maxOpenConns: 10
  maxIdleConns: 2
  connMaxLifetime: 10m
log:
  level: debug
order:
  txTimeout: 3s
  maxRetryAttempts: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Order.TxTimeout)
	assert.Equal(t, 5, cfg.Order.MaxRetryAttempts)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	content := `
database:
  connMaxLifetime: soon
order:
  txTimeout: 5s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
