package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// envKeys lists every variable Load reads, so tests can reset them
var envKeys = []string{
	"PORT", "GO_ENV", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
	"DB_PASSWORD", "DB_SSLMODE", "WEBHOOK_URL", "JS_COUNTER_SEED",
	"AWS_REGION", "AWS_S3_BUCKET", "AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY", "LOG_LEVEL",
}

func withCleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			t.Cleanup(func() { os.Setenv(key, original) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	withCleanEnv(t)

	cfg, err := Load()
	assert.NoError(t, err, "Load should succeed with defaults")
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "", cfg.WebhookURL)
	assert.Equal(t, int64(199999), cfg.CounterSeed)
}

func TestLoadFromEnvironment(t *testing.T) {
	withCleanEnv(t)

	os.Setenv("PORT", "9000")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_NAME", "jobsheets_prod")
	os.Setenv("WEBHOOK_URL", "https://hooks.example.com/js")
	os.Setenv("JS_COUNTER_SEED", "300000")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "jobsheets_prod", cfg.DBName)
	assert.Equal(t, "https://hooks.example.com/js", cfg.WebhookURL)
	assert.Equal(t, int64(300000), cfg.CounterSeed)
}

func TestLoadInvalidCounterSeed(t *testing.T) {
	withCleanEnv(t)

	os.Setenv("JS_COUNTER_SEED", "not-a-number")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, int64(199999), cfg.CounterSeed, "Invalid seed should fall back to default")
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5433",
		DBName:     "jobsheets",
		DBUser:     "svc",
		DBPassword: "secret",
		DBSSLMode:  "require",
	}

	dsn := cfg.DatabaseDSN()
	assert.Equal(t, "host=localhost user=svc password=secret dbname=jobsheets port=5433 sslmode=require", dsn)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{DBName: "x"}).Validate(), "Missing DB_HOST should fail validation")
	assert.Error(t, (&Config{DBHost: "x"}).Validate(), "Missing DB_NAME should fail validation")
	assert.NoError(t, (&Config{DBHost: "x", DBName: "y"}).Validate())
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{GoEnv: "production"}).IsProduction())
	assert.True(t, (&Config{GoEnv: "test"}).IsTest())
	assert.True(t, (&Config{GoEnv: "development"}).IsDevelopment())
	assert.False(t, (&Config{GoEnv: "development"}).IsProduction())
}

func TestGetSetConfig(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	cfg := &Config{Port: "1234"}
	SetConfig(cfg)
	assert.Equal(t, cfg, GetConfig())
}
