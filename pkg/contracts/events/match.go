package events

import (
	"fmt"
	"time"
)

// Status do ciclo de vida de uma partida simulada.
// Transições sempre para frente: scheduled -> in_progress -> finished.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Tipos de evento gerados durante a partida.
type EventKind string

const (
	EventGoal       EventKind = "goal"
	EventRedCard    EventKind = "red_card"
	EventYellowCard EventKind = "yellow_card"
)

// Score representa o placar (mandante, visitante).
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// String formata o placar no padrão "H-A" usado nos payloads de atualização.
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// Odds do mercado 1x2 da partida.
type Odds struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Game é o estado completo de uma partida simulada.
// É a representação interna do registry e também o formato enviado
// no snapshot initial_state para novos assinantes.
type Game struct {
	GameID    string    `json:"game_id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	Score     Score     `json:"score"`
	Status    Status    `json:"status"`
	Minute    int       `json:"minute"`
	StartTime time.Time `json:"startTime"`
	Odds      Odds      `json:"odds"`
}
