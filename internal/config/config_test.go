package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBDriver:   "mysql",
		DBHost:     "db",
		DBPort:     "3306",
		DBUser:     "hydra",
		DBPassword: "pw",
		DBName:     "hydra",
	}
	require.Contains(t, cfg.DSN(), "hydra:pw@tcp(db:3306)/hydra")

	cfg.DBDriver = "postgres"
	cfg.DBPort = "5432"
	cfg.DBSSLMode = "disable"
	require.Contains(t, cfg.DSN(), "host=db port=5432")
	require.Contains(t, cfg.DSN(), "sslmode=disable")
}
