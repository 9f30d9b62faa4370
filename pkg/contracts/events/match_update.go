package events

import "time"

// InitialState é a primeira (e única) mensagem enviada a um assinante
// recém-conectado: o snapshot de todas as partidas do registry.
type InitialState struct {
	Type string `json:"type"` // sempre "initial_state"
	Data []Game `json:"data"`
}

// StatusChange notifica a transição scheduled -> in_progress.
// Não carrega placar nem odds.
type StatusChange struct {
	GameID    string    `json:"game_id"`
	Status    Status    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MatchUpdate é o payload por tick de uma partida em andamento,
// e também o aviso terminal quando a partida encerra.
// Event/EventTeam ficam nulos quando o tick não gerou evento.
type MatchUpdate struct {
	GameID    string     `json:"game_id"`
	HomeTeam  string     `json:"home_team"`
	AwayTeam  string     `json:"away_team"`
	Score     string     `json:"score"` // "H-A"
	Status    Status     `json:"status"`
	Minute    int        `json:"minute"`
	Event     *EventKind `json:"event"`
	EventTeam *string    `json:"event_team"`
	Message   string     `json:"message"`
	Timestamp time.Time  `json:"timestamp"`
	Odds      Odds       `json:"odds"`
}
