package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "match-feed-simulator", cfg.ServiceName)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "9094", cfg.MetricsPort)
	assert.Equal(t, 5*time.Second, cfg.TickInterval)
	assert.Equal(t, 30*time.Second, cfg.SpawnInterval)
	assert.False(t, cfg.KafkaEnabled)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, "match_updates", cfg.TopicMatchUpdates)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "250ms")
	t.Setenv("SPAWN_INTERVAL", "1m")
	t.Setenv("KAFKA_EXPORT_ENABLED", "true")
	t.Setenv("REDIS_EXPORT_ENABLED", "1")
	t.Setenv("HTTP_PORT_SIMULATOR", "9900")

	cfg := Load()
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, time.Minute, cfg.SpawnInterval)
	assert.True(t, cfg.KafkaEnabled)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, "9900", cfg.HTTPPort)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "not-a-duration")
	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.TickInterval)
}
