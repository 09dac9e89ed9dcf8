package engine

import "draughts/experiments/metrics"

type Runner interface {
	// Run plays a game till there's a winner or the turn limit is reached. The winner is empty for a draw.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
