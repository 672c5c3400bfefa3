package searcher

// Hyperparameters for MCTS

const DefaultExploration = 1.414 // Exploration constant, roughly sqrt(2)

const DefaultSimulations = 100 // Select-expand-simulate-backup cycles per search

const noParent = -1 // Arena index of the root's parent
const noAction = -1 // Action leading to the root

// Perspective selects whose reward a simulation records at its leaf.
type Perspective int

const (
	// Leaf rewards are scored for the player who chose the action leading
	// to the leaf, so every node's value is from its parent's point of view.
	PerspectiveMover Perspective = iota
	// Leaf rewards are scored for the player to move at the leaf. Children
	// then rate positions for the opponent of whoever selects among them.
	PerspectiveToMove
)
