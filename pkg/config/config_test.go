package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "admin@skillswap.com", cfg.Session.AdminEmail)
	assert.Equal(t, time.Second, cfg.Session.LoginDelay)
	assert.Equal(t, 3, cfg.Matching.Limit)
	assert.False(t, cfg.Reports.Enabled)
	assert.Equal(t, "csv", cfg.Reports.Format)
	assert.Equal(t, 168*time.Hour, cfg.Reports.Retention)
	assert.Equal(t, 2, cfg.Reports.Workers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("ADMIN_EMAIL", " Root@SkillSwap.com ")
	t.Setenv("LOGIN_DELAY", "250ms")
	t.Setenv("MATCH_LIMIT", "5")
	t.Setenv("ENABLE_REPORTS", "true")
	t.Setenv("REPORTS_FORMAT", "PDF")
	t.Setenv("REPORTS_RETENTION", "24h")
	t.Setenv("REPORTS_WORKERS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "root@skillswap.com", cfg.Session.AdminEmail)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, 5, cfg.Matching.Limit)
	assert.True(t, cfg.Reports.Enabled)
	assert.Equal(t, "pdf", cfg.Reports.Format)
	assert.Equal(t, 24*time.Hour, cfg.Reports.Retention)
	assert.Equal(t, 4, cfg.Reports.Workers)
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	t.Setenv("LOGIN_DELAY", "soon")
	t.Setenv("MATCH_LIMIT", "0")
	t.Setenv("REPORTS_FORMAT", "xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Session.LoginDelay)
	assert.Equal(t, 3, cfg.Matching.Limit)
	assert.Equal(t, "csv", cfg.Reports.Format)
}
