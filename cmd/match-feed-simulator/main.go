package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/live-match-feed-poc/internal/shared/cache"
	"github.com/radieske/live-match-feed-poc/internal/shared/config"
	"github.com/radieske/live-match-feed-poc/internal/shared/logger"
	"github.com/radieske/live-match-feed-poc/internal/shared/metrics"
	"github.com/radieske/live-match-feed-poc/internal/simulator/engine"
	"github.com/radieske/live-match-feed-poc/internal/simulator/export"
	"github.com/radieske/live-match-feed-poc/internal/simulator/httpapi"
	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/internal/simulator/ws"
)

// fanSink replica cada payload do clock para todos os destinos (hub WS
// e exportadores habilitados), na ordem em que foram produzidos
type fanSink struct {
	sinks []engine.Broadcaster
}

func (f fanSink) Broadcast(v any) {
	for _, s := range f.sinks {
		s.Broadcast(v)
	}
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	simmetrics.Register()

	// Fontes de aleatoriedade separadas: clock e spawner rodam em
	// goroutines próprias e *rand.Rand não é seguro pra uso concorrente
	clockRng := engine.NewRand()
	spawnRng := engine.NewRand()

	reg := registry.New(spawnRng)
	hub := ws.NewHub(reg, log)

	sinks := []engine.Broadcaster{hub}

	var kafkaPub *export.KafkaPublisher
	if cfg.KafkaEnabled {
		kafkaPub = export.NewKafkaPublisher(cfg.KafkaBrokers, cfg.TopicMatchUpdates, log)
		defer kafkaPub.Close()
		sinks = append(sinks, kafkaPub)
		log.Info("kafka export enabled", zap.String("topic", cfg.TopicMatchUpdates))
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient, err = cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redisClient.Close()
		sinks = append(sinks, export.NewRedisExporter(redisClient, cfg.RedisChannel, time.Minute, log))
		log.Info("redis export enabled", zap.String("channel", cfg.RedisChannel))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	spawner := &engine.Spawner{Registry: reg, Rng: spawnRng, Log: log}
	go spawner.Run(ctx, cfg.SpawnInterval)

	clock := &engine.Clock{Registry: reg, Rng: clockRng, Sink: fanSink{sinks}, Log: log}
	go clock.Run(ctx, cfg.TickInterval)

	// Métricas e health em porta exclusiva; o health valida os destinos
	// de exportação habilitados
	metrics.StartMetricsServer(cfg.MetricsPort, func(hctx context.Context) error {
		if redisClient != nil {
			if err := redisClient.Ping(hctx).Err(); err != nil {
				return err
			}
		}
		if kafkaPub != nil {
			return kafkaPub.HealthCheck(hctx)
		}
		return nil
	})
	log.Info("metrics/health server running", zap.String("addr", ":"+cfg.MetricsPort))

	// Servidor público: /ws + API REST de leitura
	api := &httpapi.API{Registry: reg, Hub: hub}
	addr := ":" + cfg.HTTPPort
	log.Info("match feed simulator running",
		zap.String("addr", addr),
		zap.String("paths", "/ws,/v1/matches"),
	)
	if err := http.ListenAndServe(addr, api.Router()); err != nil {
		log.Fatal("public server error", zap.Error(err))
	}
}
