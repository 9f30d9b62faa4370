package config

import (
	"os"
	"time"

	ctopics "github.com/radieske/live-match-feed-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução do serviço
// Inclui portas, períodos dos timers da simulação e destinos de exportação do feed
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string

	// Timers da simulação
	TickInterval  time.Duration // período do clock (avanço das partidas)
	SpawnInterval time.Duration // período de criação de novas partidas

	// Exportação opcional do feed (Kafka / Redis)
	KafkaEnabled      bool
	KafkaBrokers      string // "a:9092,b:9092"
	TopicMatchUpdates string
	RedisEnabled      bool
	RedisAddr         string
	RedisChannel      string

	// Portas do serviço
	HTTPPort    string // porta pública: /ws + API REST
	MetricsPort string // porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults do simulador
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "match-feed-simulator"),

		TickInterval:  getDuration("TICK_INTERVAL", 5*time.Second),
		SpawnInterval: getDuration("SPAWN_INTERVAL", 30*time.Second),

		KafkaEnabled:      getBool("KAFKA_EXPORT_ENABLED", false),
		KafkaBrokers:      getEnv("KAFKA_BROKERS", "localhost:9092"),
		TopicMatchUpdates: getEnv("KAFKA_TOPIC_MATCH_UPDATES", ctopics.MatchUpdates),
		RedisEnabled:      getBool("REDIS_EXPORT_ENABLED", false),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisChannel:      getEnv("REDIS_PUBSUB_CHANNEL", "match_updates_broadcast"),

		HTTPPort:    getEnv("HTTP_PORT_SIMULATOR", "9000"),
		MetricsPort: getEnv("METRICS_PORT_SIMULATOR", "9094"),
	}
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getDuration interpreta a variável como duração ("5s", "1m"); valor inválido cai no default
func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getBool aceita "true"/"1" como verdadeiro
func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		return v == "true" || v == "1"
	}
	return def
}
