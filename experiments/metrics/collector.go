package metrics

import (
	"time"
)

type SearchMetric struct {
	Duration time.Duration
	Nodes    int
	Cutoffs  int
	Depth    int // Deepest fully searched ply
	TimedOut bool
}

type MoveMetric struct {
	Step   int
	Player string // Colour of the mover
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the metrics of a single search call. Searches are single
// threaded so collectors need no synchronisation.
type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	SetDepth(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     int
	cutoffs   int
	depth     int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetDepth(depth int) {
	m.depth = depth
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Depth:    m.depth,
		TimedOut: m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) SetTimedOut()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
