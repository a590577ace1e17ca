package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

func TestLoadConfig_FlagsAndEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "")
	t.Setenv("DATABASE_URI", "postgres://env")
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("CARD_ORDER", "")

	conf, err := loadConfig([]string{"-a", ":9090", "-d", "postgres://flag", "-c", "id_desc"})
	require.NoError(t, err)

	// окружение приоритетнее флагов.
	assert.Equal(t, "postgres://env", conf.DatabaseDSN)
	assert.Equal(t, ":9090", conf.RunAddress)
	assert.Empty(t, conf.MigrationsDir)

	order, orderErr := conf.ParsedCardOrder()
	require.NoError(t, orderErr)
	assert.Equal(t, domain.CardOrderIDDesc, order)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "")
	t.Setenv("DATABASE_URI", "")
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("CARD_ORDER", "")

	conf, err := loadConfig([]string{"-d", "postgres://flag"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", conf.RunAddress)
	assert.Equal(t, string(domain.CardOrderIDAsc), conf.CardOrder)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("CARD_ORDER", "")

	_, err := loadConfig(nil)
	require.Error(t, err)

	t.Setenv("CARD_ORDER", "random")
	_, err = loadConfig([]string{"-d", "postgres://flag"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
