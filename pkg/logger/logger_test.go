package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/pkg/logger"
)

func TestNew_JSONConNivelYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("descartado")
	l.Component("sales").Warn().Str("sale_id", "s1").Msg("total distinto")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "sales", entry["component"])
	assert.Equal(t, "s1", entry["sale_id"])
	assert.Equal(t, "total distinto", entry["message"])
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "verbose", Output: &buf})

	l.Debug().Msg("no")
	assert.Zero(t, buf.Len())
	l.Info().Msg("si")
	assert.NotZero(t, buf.Len())
}

func TestNew_CampoServiceYWith(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "debug", Service: "tacohut-api", Output: &buf})

	l.With("week", "2024-01-15").Debug().Msg("reporte")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "tacohut-api", entry["service"])
	assert.Equal(t, "2024-01-15", entry["week"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
