package engine

import (
	"fmt"

	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// Outcome é o resultado do sorteio de evento de um tick.
// Score traz o placar resultante; o chamador é responsável por gravá-lo
// de volta na partida. Event e Team ficam nulos quando nada aconteceu.
type Outcome struct {
	Event   *events.EventKind
	Team    *string
	Message string
	Score   events.Score
}

// DetermineEvent sorteia uniformemente entre gol, cartão vermelho,
// cartão amarelo e nenhum evento, sem pesar minuto ou placar.
// Função pura sobre o estado atual da partida: não tem efeito colateral.
func DetermineEvent(g *events.Game, rng Rand) Outcome {
	score := g.Score

	switch rng.Intn(4) {
	case 0:
		kind := events.EventGoal
		team := g.HomeTeam
		if rng.Intn(2) == 1 {
			team = g.AwayTeam
			score.Away++
		} else {
			score.Home++
		}
		return Outcome{
			Event:   &kind,
			Team:    &team,
			Message: fmt.Sprintf("GOAL! %s finds the net", team),
			Score:   score,
		}
	case 1:
		kind := events.EventRedCard
		team := pickSide(g, rng)
		return Outcome{
			Event:   &kind,
			Team:    &team,
			Message: "Red card! A player has been sent off",
			Score:   score,
		}
	case 2:
		kind := events.EventYellowCard
		team := pickSide(g, rng)
		return Outcome{
			Event:   &kind,
			Team:    &team,
			Message: "Yellow card shown for a rough challenge",
			Score:   score,
		}
	default:
		return Outcome{
			Message: "No significant event",
			Score:   score,
		}
	}
}

// pickSide sorteia o lado afetado pelo evento
func pickSide(g *events.Game, rng Rand) string {
	if rng.Intn(2) == 1 {
		return g.AwayTeam
	}
	return g.HomeTeam
}
