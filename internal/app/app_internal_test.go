package app

import (
	"testing"

	"github.com/Egor213/BotStats/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestWithSSLModeDisabled(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "postgres://u:p@db:5432/stats", want: "postgres://u:p@db:5432/stats?sslmode=disable"},
		{name: "with query", in: "postgres://db/stats?pool_max_conns=4", want: "postgres://db/stats?pool_max_conns=4&sslmode=disable"},
		{name: "already set", in: "postgres://db/stats?sslmode=require", want: "postgres://db/stats?sslmode=require"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withSSLModeDisabled(tc.in))
		})
	}
}

func TestFlags_Apply(t *testing.T) {
	cfg := newTestConfig()
	zero := 0

	Flags{Port: "9999", HTMLPath: "./html", RetentionThreshold: &zero}.apply(cfg)

	assert.Equal(t, "9999", cfg.HTTP.Port)
	assert.Equal(t, "./html", cfg.HTTP.HTMLPath)
	assert.Equal(t, 0, cfg.Retention.Threshold)
}

func TestFlags_ApplyKeepsConfig(t *testing.T) {
	cfg := newTestConfig()

	Flags{}.apply(cfg)

	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, 100, cfg.Retention.Threshold)
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = "8000"
	cfg.Retention.Threshold = 100
	return cfg
}
