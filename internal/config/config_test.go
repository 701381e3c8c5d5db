package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LogFormat:         "json",
		DBType:            "postgres",
		DBDatabase:        "amenitydb",
		DBUser:            "amenity",
		DBConnectionLimit: 5,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database", func(c *Config) { c.DBDatabase = "" }},
		{"missing user", func(c *Config) { c.DBUser = "" }},
		{"zero pool", func(c *Config) { c.DBConnectionLimit = 0 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	sqlite := validConfig()
	sqlite.DBType = "sqlite-pure"
	sqlite.DBUser = ""
	assert.NoError(t, sqlite.Validate(), "sqlite needs no credentials")
	assert.True(t, sqlite.IsSQLite())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	t.Setenv("DB_TYPE", "SQLite")
	t.Setenv("DB_DATABASE", "amenities.db")
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "amenities.db", cfg.DBDatabase)
	assert.Equal(t, 5, cfg.DBConnectionLimit, "unparsable ints fall back to the default")
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_TYPE=sqlite-pure\nDB_DATABASE=from-file.db\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("ENV_FILE", path)
	// real environment wins over the file
	t.Setenv("LOG_LEVEL", "warn")
	// godotenv sets these; register them so they are restored afterwards
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_DATABASE", "")
	require.NoError(t, os.Unsetenv("DB_TYPE"))
	require.NoError(t, os.Unsetenv("DB_DATABASE"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite-pure", cfg.DBType)
	assert.Equal(t, "from-file.db", cfg.DBDatabase)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err = Load()
	assert.Error(t, err)
}
