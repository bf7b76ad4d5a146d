package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here

	cfg, envFileLoaded := Load()
	require.NotNil(t, cfg)

	assert.False(t, envFileLoaded)
	assert.Equal(t, "5300", cfg.APIPort)
	assert.Equal(t, StorageBackendPostgres, cfg.StorageBackend)
	assert.Equal(t, "wings", cfg.DBName)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AdminAuthRequired)
	assert.True(t, cfg.DBMigrateOnBoot)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLife)
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=wings sslmode=disable", cfg.DBConnStr)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("API_PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://wings.example ,")
	t.Setenv("ADMIN_AUTH_REQUIRED", "true")
	t.Setenv("DB_MIGRATE_ON_START", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "not-a-number")

	cfg, _ := Load()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, StorageBackendMemory, cfg.StorageBackend)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:3000", "https://wings.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AdminAuthRequired)
	assert.False(t, cfg.DBMigrateOnBoot)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLife)
	assert.Contains(t, cfg.DBConnStr, "host=db")
	assert.Contains(t, cfg.DBConnStr, "dbname=inventory")
}

func TestGetEnvAsList_Blank(t *testing.T) {
	t.Setenv("SOME_LIST", " , ")
	assert.Equal(t, []string{"x"}, getEnvAsList("SOME_LIST", []string{"x"}))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
