package export

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	sharedkafka "github.com/radieske/live-match-feed-poc/internal/shared/kafka"
	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

const publishTimeout = 2 * time.Second

// KafkaPublisher espelha cada payload do feed no tópico de match
// updates, para consumo pelo pipeline de ingestão da plataforma.
// Entrega é melhor esforço: falha é logada e contada, nunca bloqueia
// nem derruba o tick.
type KafkaPublisher struct {
	writer *sharedkafka.Writer
	log    *zap.Logger
}

func NewKafkaPublisher(brokers string, topic string, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: sharedkafka.NewWriter(brokers, topic),
		log:    log,
	}
}

// Broadcast publica o payload com o game_id como chave, mantendo a
// ordem por partição de cada partida
func (p *KafkaPublisher) Broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		p.log.Error("payload marshal failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := sharedkafka.WriteJSON(ctx, p.writer, keyFor(v), b); err != nil {
		p.log.Warn("kafka export failed", zap.Error(err))
		simmetrics.ExportFailures.WithLabelValues("kafka").Inc()
	}
}

// HealthCheck publica uma mensagem de ping no tópico
func (p *KafkaPublisher) HealthCheck(ctx context.Context) error {
	return sharedkafka.WriteJSON(ctx, p.writer, "healthcheck", []byte(`{"ping":"ok"}`))
}

// Close finaliza o writer e libera recursos associados
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// keyFor extrai o game_id do payload para usar como chave da mensagem
func keyFor(v any) string {
	switch m := v.(type) {
	case events.MatchUpdate:
		return m.GameID
	case events.StatusChange:
		return m.GameID
	}
	return ""
}
