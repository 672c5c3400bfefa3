package game

import (
	"mcts/metrics"
	"mcts/searcher"
	"mcts/utils"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyBoard(t *testing.T) {
	m := searcher.NewMCTS(ActionSpace, searcher.WithSimulations(50), searcher.WithSeed(42), searcher.WithLogger(zerolog.Nop()))

	action, probabilities, err := m.Search(NewTicTacToe())

	require.NoError(t, err)
	require.GreaterOrEqual(t, action, 0)
	require.Less(t, action, ActionSpace)
	require.Len(t, probabilities, ActionSpace)
	for _, p := range probabilities {
		require.GreaterOrEqual(t, p, 0.0)
	}
	require.InDelta(t, 1.0, utils.Sum(probabilities), 1e-9)
}

func TestSearchFindsWinningMove(t *testing.T) {
	// X X .
	// O O .
	// . . .
	s := FromBoard([ActionSpace]int{X, X, Empty, O, O, Empty, Empty, Empty, Empty}, X)
	m := searcher.NewMCTS(ActionSpace, searcher.WithSimulations(200), searcher.WithSeed(42), searcher.WithLogger(zerolog.Nop()))

	action, probabilities, err := m.Search(s)

	require.NoError(t, err)
	require.Equal(t, 2, action, "Should complete the top row")
	require.Greater(t, probabilities[2], 0.5, "Winning move should take most of the visits")
	for _, occupied := range []int{0, 1, 3, 4} {
		require.Equal(t, 0.0, probabilities[occupied])
	}
}

func TestSearchTerminalBoard(t *testing.T) {
	s := FromBoard([ActionSpace]int{X, O, X, X, O, O, O, X, X}, O)
	m := searcher.NewMCTS(ActionSpace, searcher.WithSeed(42), searcher.WithLogger(zerolog.Nop()))

	_, probabilities, err := m.Search(s)

	require.ErrorIs(t, err, searcher.ErrTerminalRoot)
	require.Nil(t, probabilities)
}

func TestSearchToMovePerspective(t *testing.T) {
	m := searcher.NewMCTS(ActionSpace,
		searcher.WithSimulations(100),
		searcher.WithSeed(7),
		searcher.WithPerspective(searcher.PerspectiveToMove),
		searcher.WithLogger(zerolog.Nop()),
	)

	action, probabilities, err := m.Search(NewTicTacToe().Play(4))

	require.NoError(t, err)
	require.NotEqual(t, 4, action, "Occupied cell cannot be chosen")
	require.Equal(t, 0.0, probabilities[4])
	require.InDelta(t, 1.0, utils.Sum(probabilities), 1e-9)
}

func TestSearchSelfPlay(t *testing.T) {
	m := searcher.NewMCTS(ActionSpace,
		searcher.WithSimulations(100),
		searcher.WithSeed(1),
		searcher.WithMetrics(),
		searcher.WithLogger(zerolog.Nop()),
	)

	var records []metrics.MoveRecord
	var s searcher.State = NewTicTacToe()
	for !s.IsTerminal() {
		action, _, err := m.Search(s)
		require.NoError(t, err)
		require.NotEqual(t, -1, utils.FindIndex(s.LegalActions(), action))

		metric := m.Metric()
		require.Equal(t, 100, metric.Episodes)
		records = append(records, metrics.MoveRecord{
			Step:         len(records) + 1,
			Player:       s.Player(),
			Action:       action,
			SearchMetric: metric,
		})
		s = s.Play(action)
	}
	require.GreaterOrEqual(t, len(records), 5, "A game takes at least five moves")

	var out strings.Builder
	require.NoError(t, metrics.WriteMoveRecords(&out, records))
	require.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(records)+1)
}
