package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: resumeapp
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
  cors:
    allowOrigins:
      - http://localhost:3000
postgres:
  master:
    host: localhost
    port: "5432"
    userName: postgres
  database: resumeapp
jwt:
  secret: ""
  algorithm: HS256
  accessTokenExpireMin: 30
auth:
  passwordHasher: bcrypt
  bcryptCost: 10
`

func writeConfigDir(t *testing.T, yamlBody string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yamlBody), 0o600))

	return dir
}

func TestNew_EnvironmentOverridesYAML(t *testing.T) {
	t.Chdir(writeConfigDir(t, testYAML))
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESSTOKENEXPIREMIN", "5")
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL())
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Len(t, cfg.Postgres.Replicas, 1)
	assert.Equal(t, "replica-0", cfg.Postgres.Replicas[0].Host)
}

func TestNew_DotEnvIsLoaded(t *testing.T) {
	dir := writeConfigDir(t, testYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600))
	t.Chdir(dir)
	// godotenv does not override variables that are already set; register
	// cleanup so the value does not leak into other tests.
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.JWT.Secret)
}

func TestNew_MissingSecretIsFatal(t *testing.T) {
	t.Chdir(writeConfigDir(t, testYAML))
	t.Setenv("JWT_SECRET", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Secret")
}

func TestNew_RejectsUnknownAlgorithm(t *testing.T) {
	t.Chdir(writeConfigDir(t, testYAML))
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ALGORITHM", "RS256")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Algorithm")
}

func TestNew_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
