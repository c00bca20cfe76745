package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDevelopmentConfig(t *testing.T) *Config {
	t.Helper()
	v, err := LoadConfig("config-development", "yml")
	require.NoError(t, err)

	cfg, err := ParseConfig(v)
	require.NoError(t, err)
	return cfg
}

func TestDevelopmentConfig(t *testing.T) {
	cfg := loadDevelopmentConfig(t)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8000", cfg.Server.InternalPort)
	assert.Equal(t, "cat_tracker", cfg.Postgres.DbName)
	assert.Equal(t, 5*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.Storage.MaxUploadSize)
	assert.False(t, cfg.HasObjectStorage())
	assert.True(t, cfg.IsDevelopment())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("S3_BUCKET", "cat-images")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA_TEST")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg := loadDevelopmentConfig(t)
	applyEnvOverrides(cfg)

	assert.Equal(t, "9999", cfg.Server.ExternalPort)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "hunter2", cfg.Postgres.Password)
	// credentials present switches uploads to object storage
	assert.True(t, cfg.HasObjectStorage())
}

func TestConfigPathSelection(t *testing.T) {
	assert.Equal(t, "config-development", getConfigPath(""))
	assert.Equal(t, "config-docker", getConfigPath("docker"))
	assert.Equal(t, "config-production", getConfigPath("production"))
}

func TestValidateRequiresPostgres(t *testing.T) {
	cfg := loadDevelopmentConfig(t)
	cfg.Postgres.Host = ""

	assert.Error(t, cfg.Validate())
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := loadDevelopmentConfig(t)

	dsn := cfg.GetPostgresConnectionString()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=cat_tracker")
	assert.Contains(t, dsn, "sslmode=disable")
}
