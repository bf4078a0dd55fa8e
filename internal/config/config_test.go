package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/BotStats/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const baseConfig = `
app:
  name: botstats
  version: 1.0.0
prometheus:
  port: "9100"
`

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New(writeConfig(t, baseConfig))
	require.NoError(t, err)

	assert.Equal(t, "botstats", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "9100", cfg.Prometheus.Port)
	assert.Equal(t, 6*time.Hour, cfg.Retention.Interval)
	assert.Equal(t, 100, cfg.Retention.Threshold)
	assert.Equal(t, 3*time.Second, cfg.Archive.Timeout)
	assert.False(t, cfg.Archive.Postgres.Enabled)
	assert.Equal(t, "botstats.archives", cfg.Archive.Kafka.Topic)
}

func TestNew_FileValues(t *testing.T) {
	path := writeConfig(t, baseConfig+`
http:
  port: "8080"
  html_path: ./html
retention:
  interval: 30m
  threshold: 20
archive:
  dir: ./archives
  kafka:
    enabled: true
    brokers: ["k1:9092", "k2:9092"]
`)

	cfg, err := config.New(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "./html", cfg.HTTP.HTMLPath)
	assert.Equal(t, 30*time.Minute, cfg.Retention.Interval)
	assert.Equal(t, 20, cfg.Retention.Threshold)
	assert.Equal(t, "./archives", cfg.Archive.Dir)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Archive.Kafka.Brokers)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("RETENTION_THRESHOLD", "0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.New(writeConfig(t, baseConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 0, cfg.Retention.Threshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNew_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "missing required field",
			body: "app:\n  name: botstats\n",
		},
		{
			name:    "postgres without url",
			body:    baseConfig + "archive:\n  postgres:\n    enabled: true\n",
			wantErr: config.ErrPostgresURLRequired,
		},
		{
			name:    "kafka without brokers",
			body:    baseConfig + "archive:\n  kafka:\n    enabled: true\n",
			wantErr: config.ErrKafkaBrokersRequired,
		},
		{
			name:    "negative threshold",
			body:    baseConfig + "retention:\n  threshold: -1\n",
			wantErr: config.ErrNegativeThreshold,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.New(writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
