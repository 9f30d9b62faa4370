package metrics

import "github.com/prometheus/client_golang/prometheus"

// Métricas Prometheus do simulador de feed
var (
	WSConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simulator_ws_connections",
		Help: "Assinantes WebSocket conectados",
	})
	WSMessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_ws_messages_sent_total",
		Help: "Total de mensagens WS enviadas",
	})
	TicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_ticks_total",
		Help: "Total de passadas do clock da simulação",
	})
	GoalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_goals_total",
		Help: "Total de gols gerados",
	})
	MatchesFinished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_matches_finished_total",
		Help: "Total de partidas encerradas",
	})
	GamesSpawned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_games_spawned_total",
		Help: "Total de partidas criadas pelo spawner",
	})
	GamesByStatus = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simulator_games",
		Help: "Partidas no registry por status",
	}, []string{"status"})
	ExportFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulator_export_failures_total",
		Help: "Falhas de exportação do feed por destino",
	}, []string{"sink"})
)

// Register registra todos os coletores no registry default do Prometheus.
// Deve ser chamado uma única vez, no main.
func Register() {
	prometheus.MustRegister(
		WSConnections,
		WSMessagesSent,
		TicksTotal,
		GoalsTotal,
		MatchesFinished,
		GamesSpawned,
		GamesByStatus,
		ExportFailures,
	)
}
