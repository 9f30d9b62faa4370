package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// Parâmetros de reposição de fixtures: lote inicial com início próximo,
// lotes recorrentes menores com início mais distante
const (
	initialBatchSize  = 3
	initialDelayMin   = 5 * time.Second
	initialDelayMax   = 20 * time.Second
	recurringBatch    = 2
	recurringDelayMin = 15 * time.Second
	recurringDelayMax = 45 * time.Second
)

// Spawner cria o lote inicial de partidas no start do processo e repõe
// o estoque de fixtures periodicamente. Só cria; nunca muta nem remove.
type Spawner struct {
	Registry *registry.Registry
	Rng      Rand
	Log      *zap.Logger
}

// Run cria o lote inicial e entra no laço de reposição periódica
func (s *Spawner) Run(ctx context.Context, interval time.Duration) {
	s.SpawnBatch(initialBatchSize, initialDelayMin, initialDelayMax)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Log.Info("spawner stopped")
			return
		case <-ticker.C:
			s.SpawnBatch(recurringBatch, recurringDelayMin, recurringDelayMax)
		}
	}
}

// SpawnBatch cria n partidas com início sorteado dentro da faixa dada
func (s *Spawner) SpawnBatch(n int, minDelay, maxDelay time.Duration) []events.Game {
	out := make([]events.Game, 0, n)
	for i := 0; i < n; i++ {
		delay := minDelay + time.Duration(s.Rng.Float64()*float64(maxDelay-minDelay))
		g := s.Registry.CreateGame(delay)
		simmetrics.GamesSpawned.Inc()
		s.Log.Info("game scheduled",
			zap.String("game_id", g.GameID),
			zap.String("home", g.HomeTeam),
			zap.String("away", g.AwayTeam),
			zap.Time("start", g.StartTime),
		)
		out = append(out, g)
	}
	return out
}
