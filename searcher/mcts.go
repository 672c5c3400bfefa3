package searcher

import (
	"fmt"
	"mcts/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS runs UCB1 tree search with uniformly random rollouts. Each call to
// Search builds and discards its own tree. An MCTS owns its random source
// and must not be shared between goroutines.
type MCTS struct {
	actionSpace int
	exploration float64
	simulations int
	perspective Perspective
	rng         *rand.Rand
	metrics     metrics.Collector
	metric      metrics.SearchMetric
	logger      zerolog.Logger
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.simulations = simulations
		}
	}
}

func WithPerspective(perspective Perspective) Option {
	return func(m *MCTS) {
		if perspective == PerspectiveMover || perspective == PerspectiveToMove {
			m.perspective = perspective
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithSource(src rand.Source) Option {
	return func(m *MCTS) {
		if src != nil {
			m.rng = rand.New(src)
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *MCTS) {
		m.logger = logger
	}
}

// NewMCTS creates a searcher whose probability vectors have actionSpace slots.
func NewMCTS(actionSpace int, options ...Option) *MCTS {
	if actionSpace <= 0 {
		panic("action space must have at least one action")
	}

	m := &MCTS{ // Default values
		actionSpace: actionSpace,
		exploration: DefaultExploration,
		simulations: DefaultSimulations,
		perspective: PerspectiveMover,
		metrics:     metrics.NewDummyCollector(),
		logger:      log.Logger,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// Search picks an action for the player to move in state. It returns the
// most visited root action and the share of root visits for every action
// in the action space; actions that are not legal in state get 0.
//
// state must not be terminal: Search returns ErrTerminalRoot for it.
func (m *MCTS) Search(state State) (int, []float64, error) {
	if state.IsTerminal() {
		m.logger.Warn().Msg("rejected search from a terminal state")
		return noAction, nil, ErrTerminalRoot
	}
	if len(state.LegalActions()) == 0 {
		m.logger.Warn().Msg("rejected search from a state without legal actions")
		return noAction, nil, ErrNoLegalActions
	}

	t := newTree(state, m.exploration, m.perspective, m.rng, m.metrics)
	m.metrics.Start(m.simulations, m.exploration)
	for i := 0; i < m.simulations; i++ {
		if err := t.simulate(); err != nil {
			return noAction, nil, fmt.Errorf("simulation %d: %w", i+1, err)
		}
	}
	m.metric = m.metrics.Complete()

	action, probabilities, err := t.policy(m.actionSpace)
	if err != nil {
		return noAction, nil, err
	}

	m.logger.Debug().
		Int("simulations", m.simulations).
		Int("nodes", len(t.nodes)).
		Int("action", action).
		Float64("probability", probabilities[action]).
		Msgf("player %d search complete", state.Player())
	return action, probabilities, nil
}

// Metric returns the metrics of the last completed search. It is empty
// unless the searcher was created WithMetrics.
func (m *MCTS) Metric() metrics.SearchMetric {
	return m.metric
}
