package registry

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// Rand é a fonte de aleatoriedade usada na criação de partidas.
// Satisfeita por *math/rand.Rand; testes injetam sequências fixas.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Catálogo de clubes usado no sorteio das partidas
var teamCatalog = []string{
	"Flamengo", "Palmeiras", "Grêmio", "Internacional",
	"Corinthians", "Santos", "São Paulo", "Vasco",
	"Fluminense", "Botafogo", "Cruzeiro", "Atlético Mineiro",
	"Bahia", "Fortaleza",
}

// Faixas de geração das odds iniciais (mercado 1x2)
const (
	winOddsMin  = 1.5
	winOddsMax  = 3.5
	drawOddsMin = 2.0
	drawOddsMax = 3.0
)

// Registry guarda todas as partidas em ordem de criação.
// É o único dono do estado: spawner cria via CreateGame, o clock muta
// via Update, e leitores pegam cópias via Snapshot. Partidas nunca são
// removidas; encerradas ficam no registry só para snapshot.
type Registry struct {
	mu    sync.RWMutex
	games []*events.Game
	rng   Rand
}

func New(rng Rand) *Registry {
	return &Registry{rng: rng}
}

// CreateGame cria uma partida agendada para começar daqui a delay,
// com identidade, clubes e odds sorteados.
func (r *Registry) CreateGame(delay time.Duration) events.Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	home := teamCatalog[r.rng.Intn(len(teamCatalog))]
	away := teamCatalog[r.rng.Intn(len(teamCatalog))]
	for away == home {
		away = teamCatalog[r.rng.Intn(len(teamCatalog))]
	}

	g := &events.Game{
		GameID:    "MATCH-" + strings.ToUpper(uuid.NewString()[:8]),
		HomeTeam:  home,
		AwayTeam:  away,
		Status:    events.StatusScheduled,
		StartTime: time.Now().UTC().Add(delay),
		Odds: events.Odds{
			HomeWin: round2(winOddsMin + r.rng.Float64()*(winOddsMax-winOddsMin)),
			Draw:    round2(drawOddsMin + r.rng.Float64()*(drawOddsMax-drawOddsMin)),
			AwayWin: round2(winOddsMin + r.rng.Float64()*(winOddsMax-winOddsMin)),
		},
	}
	r.games = append(r.games, g)
	return *g
}

// Update executa fn com acesso exclusivo à lista de partidas.
// É o único caminho de mutação do clock; fn não deve bloquear.
func (r *Registry) Update(fn func(games []*events.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.games)
}

// Snapshot devolve uma cópia de todas as partidas em ordem de criação
func (r *Registry) Snapshot() []events.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]events.Game, len(r.games))
	for i, g := range r.games {
		out[i] = *g
	}
	return out
}

// Get devolve uma cópia da partida com o id informado
func (r *Registry) Get(gameID string) (events.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.games {
		if g.GameID == gameID {
			return *g, true
		}
	}
	return events.Game{}, false
}

// Len devolve o total de partidas já criadas
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
