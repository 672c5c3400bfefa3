package searcher

import "errors"

// State is a single game position. Implementations must be immutable:
// Play always returns a new State and never changes the receiver.
type State interface {
	// Player to move in this position
	Player() int
	// Ordered, duplicate-free actions playable from this position
	LegalActions() []int
	Play(action int) State
	IsTerminal() bool
	// Reward in {-1, 0, +1} from the given player's perspective
	Reward(player int) int
}

var (
	ErrTerminalRoot     = errors.New("cannot search from a terminal state")
	ErrNoLegalActions   = errors.New("non-terminal state has no legal actions")
	ErrActionOutOfRange = errors.New("action outside of the action space")
	ErrNoVisits         = errors.New("root children have no visits")
)
