package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SESSION_TTL", "TOP_CLIENTS", "REFERENCE_DATE", "MAX_UPLOAD_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Report.TopClients)
	assert.Equal(t, 10, cfg.Report.PDFTopClients)
	assert.Equal(t, 20, cfg.Report.XLSXTopClients)
	assert.Equal(t, int64(20<<20), cfg.Upload.MaxSize)
	assert.Nil(t, cfg.Report.ReferenceDate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("TOP_CLIENTS", "5")
	t.Setenv("REFERENCE_DATE", "2025-07-15")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5, cfg.Report.TopClients)
	require.NotNil(t, cfg.Report.ReferenceDate)
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), *cfg.Report.ReferenceDate)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOP_CLIENTS", "-3")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("REFERENCE_DATE", "15/07/2025")

	cfg := Load()

	assert.Equal(t, 10, cfg.Report.TopClients)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Nil(t, cfg.Report.ReferenceDate)
}
