package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration, "tokens de 7 días por defecto")
	assert.Equal(t, 20, cfg.HTTP.LoginRateLimit)
	assert.Equal(t, 5, cfg.Inventory.TopN)
	assert.True(t, cfg.DB.Migrate)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "8081")
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("DB_MIGRATE", "false")
	v.Set("INVENTORY_TOP_N", "no-es-numero")

	cfg := fromViper(v)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.False(t, cfg.DB.Migrate)
	assert.Equal(t, 5, cfg.Inventory.TopN, "valor no numérico cae al default")
}

func TestValidate_RequiereSecret(t *testing.T) {
	cfg := fromViper(viper.New())
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "x"
	require.NoError(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "quimicos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/quimicos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otra"
	assert.Equal(t, "postgres://otra", c.ConnectionString())
}
