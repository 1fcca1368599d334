package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-iptv/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, 30*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, 10*1024*1024, cfg.Upload.MaxBytes())
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("PORT", "4000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port, "PORT aplica cuando HTTP_PORT no está definido")

	t.Setenv("HTTP_PORT", "8081")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
}

func TestValidate_SinSecret(t *testing.T) {
	cfg := &config.Config{
		DB:     config.DBConfig{Driver: config.DriverSQLite},
		JWT:    config.JWTConfig{Expiration: 60},
		Upload: config.UploadConfig{MaxMB: 1},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidate_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{
		DB:     config.DBConfig{Driver: "mssql"},
		JWT:    config.JWTConfig{Secret: "x", Expiration: 60},
		Upload: config.UploadConfig{MaxMB: 1},
	}
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
