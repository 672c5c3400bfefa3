package searcher

// mockState is a fixed-depth game: the same actions are offered until depth
// actions have been played, then winner decides the result.
type mockState struct {
	player  int
	actions []int
	played  []int
	depth   int
	winner  func(played []int) int
	stuck   bool // positions after the first action offer no actions
}

func (m mockState) Player() int {
	return m.player
}

func (m mockState) LegalActions() []int {
	if m.IsTerminal() || (m.stuck && len(m.played) > 0) {
		return nil
	}
	return m.actions
}

func (m mockState) Play(action int) State {
	next := m
	next.player = -m.player
	next.played = append(append([]int{}, m.played...), action)
	return next
}

func (m mockState) IsTerminal() bool {
	return len(m.played) >= m.depth
}

func (m mockState) Reward(player int) int {
	if m.winner == nil {
		return 0
	}
	switch winner := m.winner(m.played); winner {
	case 0:
		return 0
	case player:
		return 1
	default:
		return -1
	}
}

func firstActionWins(played []int) int {
	if played[0] == 0 {
		return 1
	}
	return -1
}
