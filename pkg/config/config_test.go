package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tacohut-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Africa/Nairobi", cfg.Business.TimeZone)
	assert.Equal(t, "http://localhost:5173", cfg.HTTP.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "tacohut.events", cfg.AMQP.Exchange)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TRANSACTION_SOURCE_URL", "http://pos.local:8080/")
	t.Setenv("TRANSACTION_SOURCE_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://pos.local:8080", cfg.Source.URL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	t.Setenv("TRANSACTION_SOURCE_TIMEOUT", "diez")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_RechazaValoresInvalidos(t *testing.T) {
	cfg := &config.Config{
		HTTP:     config.HTTPConfig{Port: 70000},
		Store:    config.StoreConfig{Backend: "redis"},
		Business: config.BusinessConfig{TimeZone: "Mars/Olympus"},
		Source:   config.SourceConfig{URL: "pos-sin-esquema", Timeout: time.Second},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "BUSINESS_TIMEZONE")
	assert.Contains(t, err.Error(), "TRANSACTION_SOURCE_URL")
}

func TestDBConfig_DSNEscapaContrasena(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "taco", Password: "p@ss:word", DBName: "tacohut", SSLMode: "disable"}
	assert.Equal(t, "postgres://taco:p%40ss%3Aword@db:5432/tacohut?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestBusinessConfig_LocationInvalidaUsaUTC(t *testing.T) {
	assert.Equal(t, time.UTC, config.BusinessConfig{TimeZone: "nope/nope"}.Location())
}

func TestValidate_LimitesDelPool(t *testing.T) {
	cfg := &config.Config{
		HTTP:     config.HTTPConfig{Port: 8080},
		Store:    config.StoreConfig{Backend: config.BackendPostgres},
		DB:       config.DBConfig{MaxConns: 2, MinConns: 5},
		Business: config.BusinessConfig{TimeZone: "UTC"},
		Source:   config.SourceConfig{Timeout: time.Second},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")

	cfg.DB.MinConns = 1
	assert.NoError(t, cfg.Validate())

	// Con memoria los límites del pool no aplican.
	cfg.Store.Backend = config.BackendMemory
	cfg.DB = config.DBConfig{}
	assert.NoError(t, cfg.Validate())
}
