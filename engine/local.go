package engine

import (
	"time"

	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/gamemaster"
	"draughts/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var _ Runner = (*Engine)(nil)

// Engine plays two agents against each other on a local match.
type Engine struct {
	Match  *gamemaster.Match
	Agents map[game.Colour]agent.Agent
}

func LocalEngine(rules game.Rules, first game.Colour, maxTurns int, dark, light agent.Agent) *Engine {
	if dark == nil || light == nil {
		panic("need an agent for each colour")
	}
	return &Engine{
		Match: gamemaster.NewMatch(rules, first, maxTurns),
		Agents: map[game.Colour]agent.Agent{
			game.Dark:  dark,
			game.Light: light,
		},
	}
}

// Run executes the entire game loop until the match is over.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Match.Turn().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%v is starting a game of %s", e.Match.Turn(), e.Match.Rules().Name())

	var moveMetrics []metrics.MoveMetric
	for !e.Match.IsOver() {
		player := e.Match.Turn()
		move, metric := e.Agents[player].FindMove(e.Match.Board(), player, player.Opponent())

		legal := e.Match.LegalMoves()
		if !slices.ContainsFunc(legal, move.Equal) {
			log.Warn().Msgf("%v agent returned illegal move %v => forcing %v", player, move, legal[0])
			move = legal[0]
		}
		if err := e.Match.Play(move); err != nil {
			panic(err) // Legality was checked above
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.Match.Moves(),
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: metric,
		})
	}

	winner := ""
	if colour, ok := e.Match.Winner(); ok {
		winner = colour.String()
		log.Info().Msgf("game over after %d moves, winner: %s", e.Match.Moves(), winner)
	} else {
		log.Info().Msgf("stopped after %d moves (draw)", e.Match.Moves())
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Match.Moves()
	return winner, gameMetric, moveMetrics
}
