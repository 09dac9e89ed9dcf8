// meta/meta.go
package meta

// MAX_TURNS ends a game in a draw once this many moves have been played.
const MAX_TURNS = 300

// DEFAULT_DEPTH defines the ply depth of the depth-limited search.
const DEFAULT_DEPTH = 4

// DEFAULT_DURATION defines the budget of the time-limited search in milliseconds.
const DEFAULT_DURATION = 25

// DEFAULT_CHECK_INTERVAL defines how many nodes the time-limited search visits
// between deadline checks.
const DEFAULT_CHECK_INTERVAL = 1024

// MAX_DEPTH bounds iterative deepening.
const MAX_DEPTH = 64
