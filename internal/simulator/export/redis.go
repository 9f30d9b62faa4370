package export

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// RedisExporter espelha o feed num canal Pub/Sub e guarda a última
// atualização de cada partida em cache com TTL curto, no mesmo formato
// que o resto da plataforma consome. O simulador nunca lê isso de volta.
type RedisExporter struct {
	client  *redis.Client
	channel string
	ttl     time.Duration
	log     *zap.Logger
}

func NewRedisExporter(client *redis.Client, channel string, ttl time.Duration, log *zap.Logger) *RedisExporter {
	return &RedisExporter{client: client, channel: channel, ttl: ttl, log: log}
}

// key gera a chave do cache da última atualização de uma partida
func key(gameID string) string { return "match:current:" + gameID }

// Broadcast publica o payload no canal e, para updates de partida,
// atualiza o cache da última posição. Melhor esforço.
func (e *RedisExporter) Broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		e.log.Error("payload marshal failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := e.client.Publish(ctx, e.channel, b).Err(); err != nil {
		e.log.Warn("redis publish failed", zap.Error(err))
		simmetrics.ExportFailures.WithLabelValues("redis").Inc()
	}

	if m, ok := v.(events.MatchUpdate); ok {
		if err := e.client.Set(ctx, key(m.GameID), b, e.ttl).Err(); err != nil {
			e.log.Warn("redis set failed", zap.Error(err))
			simmetrics.ExportFailures.WithLabelValues("redis").Inc()
		}
	}
}
