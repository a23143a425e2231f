package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "reservations"

[store_service]
url = "http://store-service:8080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "reservations", cfg.Database.DBName)
	assert.Equal(t, 3, cfg.Availability.DefaultAnchorOffsetHours)
	assert.Equal(t, 60, cfg.Availability.ClosingSoonMinutes)
	assert.Equal(t, "reservations", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.BrokerList())
	assert.Equal(t, uint32(5), cfg.StoreService.BreakerFailures)
	assert.Equal(t, float64(20), cfg.Server.RateLimitRPS)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "smc"
password = "secret"
dbname = "reservations"
sslmode = "require"

[store_service]
url = "http://store-service:8080"
timeout = 2

[redis]
enabled = true
host = "cache"
ttl = 30

[kafka]
brokers = "kafka-1:9092, kafka-2:9092,"

[availability]
default_anchor_offset_hours = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=6432 user=smc password=secret dbname=reservations sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.BrokerList())
	assert.Equal(t, 4, cfg.Availability.DefaultAnchorOffsetHours)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "reservations"

[store_service]
url = "http://store-service:8080"

[availability]
default_anchor_offset_hours = 27
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := Default()
	cfg.Database.DBName = "reservations"
	cfg.StoreService.URL = "http://store-service:8080"
	require.NoError(t, cfg.Validate())

	cfg.Server.RateLimitBurst = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Server.RateLimitRPS = 0
	assert.NoError(t, cfg.Validate())
}
