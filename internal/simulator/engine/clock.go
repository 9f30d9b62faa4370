package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	simmetrics "github.com/radieske/live-match-feed-poc/internal/simulator/metrics"
	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// Minuto em que a partida encerra
const fullTimeMinute = 12

// Broadcaster entrega um payload do feed a um destino (hub WS,
// exportadores). Entrega é melhor esforço; o clock não espera confirmação.
type Broadcaster interface {
	Broadcast(v any)
}

// Clock é o driver periódico da simulação: a cada tick avança todas as
// partidas ativas do registry e entrega os payloads resultantes ao Sink.
type Clock struct {
	Registry *registry.Registry
	Rng      Rand
	Sink     Broadcaster
	Log      *zap.Logger
}

// Run dispara um tick por período até o contexto encerrar
func (c *Clock) Run(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Log.Info("simulation clock stopped")
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick executa uma passada sobre o registry. Os payloads são coletados
// dentro do lock e entregues depois, preservando, por partida, a ordem
// em que foram produzidos.
func (c *Clock) Tick() {
	now := time.Now().UTC()

	var payloads []any
	c.Registry.Update(func(games []*events.Game) {
		for _, g := range games {
			payloads = append(payloads, c.advance(g, now)...)
		}
		updateStatusGauge(games)
	})

	for _, p := range payloads {
		c.Sink.Broadcast(p)
	}
	simmetrics.TicksTotal.Inc()
}

// advance processa uma única partida dentro da passada. Isolado com
// recover para que uma partida problemática não derrube o tick inteiro.
func (c *Clock) advance(g *events.Game, now time.Time) (out []any) {
	defer func() {
		if r := recover(); r != nil {
			c.Log.Error("game tick panicked",
				zap.String("game_id", g.GameID),
				zap.Any("panic", r),
			)
			out = nil
		}
	}()

	switch g.Status {
	case events.StatusFinished:
		// encerrada: nunca mais é mutada nem emite payload
		return nil

	case events.StatusScheduled:
		if now.Before(g.StartTime) {
			return nil
		}
		g.Status = events.StatusInProgress
		return []any{events.StatusChange{
			GameID:    g.GameID,
			Status:    events.StatusInProgress,
			Message:   fmt.Sprintf("Match started: %s vs %s", g.HomeTeam, g.AwayTeam),
			Timestamp: now,
		}}
	}

	// in_progress: avança o relógio em 1 ou 2 minutos e sorteia o evento
	g.Minute += 1 + c.Rng.Intn(2)

	outcome := DetermineEvent(g, c.Rng)
	g.Score = outcome.Score
	UpdateOdds(g, outcome.Event)

	if outcome.Event != nil && *outcome.Event == events.EventGoal {
		simmetrics.GoalsTotal.Inc()
	}

	out = append(out, events.MatchUpdate{
		GameID:    g.GameID,
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		Score:     g.Score.String(),
		Status:    g.Status,
		Minute:    g.Minute,
		Event:     outcome.Event,
		EventTeam: outcome.Team,
		Message:   outcome.Message,
		Timestamp: now,
		Odds:      g.Odds,
	})

	// A partida pode encerrar no mesmo tick: emite também o aviso
	// terminal, depois do update regular
	if g.Minute >= fullTimeMinute {
		g.Status = events.StatusFinished
		simmetrics.MatchesFinished.Inc()
		out = append(out, events.MatchUpdate{
			GameID:    g.GameID,
			HomeTeam:  g.HomeTeam,
			AwayTeam:  g.AwayTeam,
			Score:     g.Score.String(),
			Status:    events.StatusFinished,
			Minute:    g.Minute,
			Message:   fmt.Sprintf("Full-time: %s %s %s", g.HomeTeam, g.Score.String(), g.AwayTeam),
			Timestamp: now,
			Odds:      g.Odds,
		})
	}

	return out
}

// updateStatusGauge recalcula o gauge de partidas por status
func updateStatusGauge(games []*events.Game) {
	counts := map[events.Status]int{}
	for _, g := range games {
		counts[g.Status]++
	}
	for _, st := range []events.Status{events.StatusScheduled, events.StatusInProgress, events.StatusFinished} {
		simmetrics.GamesByStatus.WithLabelValues(string(st)).Set(float64(counts[st]))
	}
}
