package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Simulations  int
	Exploration  float64
	Duration     time.Duration
	Episodes     int // Completed simulations
	Expansions   int
	Nodes        int // Tree size, root included
	Rollouts     int
	TerminalHits int // Simulations that selected an already terminal leaf
	MaxDepth     int
}

type MoveRecord struct {
	Step   int
	Player int
	Action int
	SearchMetric
}

type Collector interface {
	Start(simulations int, exploration float64)
	AddEpisode()
	AddExpansion(children int)
	AddRollout()
	AddTerminalHit()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	simulations  int
	exploration  float64
	startTime    time.Time
	episodes     atomic.Int32
	expansions   atomic.Int32
	nodes        atomic.Int32
	rollouts     atomic.Int32
	terminalHits atomic.Int32
	maxDepth     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(simulations int, exploration float64) {
	m.startTime = time.Now()
	m.simulations = simulations
	m.exploration = exploration
	m.episodes.Store(0)
	m.expansions.Store(0)
	m.nodes.Store(1)
	m.rollouts.Store(0)
	m.terminalHits.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddExpansion(children int) {
	m.expansions.Add(1)
	m.nodes.Add(int32(children))
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddTerminalHit() {
	m.terminalHits.Add(1)
}

func (m *collector) ObserveDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int32(depth) <= current || m.maxDepth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Simulations:  m.simulations,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Expansions:   int(m.expansions.Load()),
		Nodes:        int(m.nodes.Load()),
		Rollouts:     int(m.rollouts.Load()),
		TerminalHits: int(m.terminalHits.Load()),
		MaxDepth:     int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(simulations int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                                {}
func (m *dummyCollector) AddExpansion(children int)                  {}
func (m *dummyCollector) AddRollout()                                {}
func (m *dummyCollector) AddTerminalHit()                            {}
func (m *dummyCollector) ObserveDepth(depth int)                     {}
func (m *dummyCollector) Complete() SearchMetric                     { return SearchMetric{} }
