package config_test

import (
	"testing"
	"time"

	"github.com/Houeta/staffdesk/internal/config"

	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STAFFDESK_ENV", "local")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("SERVER_PORT", "9090")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Postgres.Host)
	assert.Equal(t, "12345", cfg.Postgres.Port)
	assert.Equal(t, "admin", cfg.Postgres.User)
	assert.Equal(t, "adminpass", cfg.Postgres.Password)
	assert.Equal(t, "testName", cfg.Postgres.Dbname)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("SERVER_PORT", "")

	cfg := config.MustLoad()

	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	assert.PanicsWithValue(t, "config file does not exist: /nonexistent/config.yaml", func() {
		config.MustLoad()
	})
}
