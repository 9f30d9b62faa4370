package engine

import (
	"math"

	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

// Limites e deltas de ajuste das odds. Os três limites do empate são
// intencionalmente independentes entre si (e da faixa de geração):
// piso 1.50 quando um gol empata, teto 1.80 no ajuste de fim de jogo.
const (
	winOddsFloor = 1.20
	winOddsCeil  = 5.0

	leaderCut    = 0.3
	trailerBump  = 0.5
	drawCutOnTie = 0.2
	drawFloor    = 1.50

	lateGameMinute = 80
	lateDrawBump   = 0.4
	lateDrawCeil   = 1.80
)

// UpdateOdds ajusta as odds da partida em função do evento do tick e do
// relógio. Os deltas são aditivos, aplicados uma vez por tick e sempre
// presos às suas faixas; não há suavização nem retorno a uma base.
func UpdateOdds(g *events.Game, event *events.EventKind) {
	if event != nil && *event == events.EventGoal {
		switch {
		case g.Score.Home > g.Score.Away:
			g.Odds.HomeWin = math.Max(winOddsFloor, g.Odds.HomeWin-leaderCut)
			g.Odds.AwayWin = math.Min(winOddsCeil, g.Odds.AwayWin+trailerBump)
		case g.Score.Away > g.Score.Home:
			g.Odds.AwayWin = math.Max(winOddsFloor, g.Odds.AwayWin-leaderCut)
			g.Odds.HomeWin = math.Min(winOddsCeil, g.Odds.HomeWin+trailerBump)
		default:
			g.Odds.Draw = math.Max(drawFloor, g.Odds.Draw-drawCutOnTie)
		}
	}

	// Empate persistente no fim do jogo encurta a odd do empate
	if g.Minute >= lateGameMinute && g.Score.Home == g.Score.Away {
		g.Odds.Draw = math.Min(lateDrawCeil, g.Odds.Draw+lateDrawBump)
	}
}
