package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
logging:
  level: debug
  format: json
database:
  driver: mysql
  host: db.local
  port: 3306
  user: req2spec
  password: secret
  name: req2spec
minio:
  endpoint: minio.local:9000
  bucketName: specs
auth:
  apiKeys:
    ci: secret-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "minio.local:9000", cfg.Minio.Endpoint)
	assert.Equal(t, "secret-key", cfg.Auth.APIKeys["ci"])
	assert.Equal(t, "req2spec:secret@tcp(db.local:3306)/req2spec?parseTime=true&charset=utf8mb4&loc=UTC", cfg.MySQLDSN())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.RateLimit.Capacity)
	assert.Equal(t, 5, cfg.RateLimit.RefillRate)
	assert.Empty(t, cfg.Database.Driver)
	assert.Empty(t, cfg.Auth.APIKeys)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  driver: postgres
  host: db.local
  port: 5432
  user: req2spec
  password: secret
  name: req2spec
`))
	require.NoError(t, err)

	assert.Equal(t, "host=db.local port=5432 user=req2spec password=secret dbname=req2spec sslmode=disable", cfg.PostgresDSN())
}
