package searcher

import "math"

type node struct {
	state    State
	action   int
	parent   int
	children []int
	rewards  float64 // W
	visits   int     // N
	value    float64 // Q = W/N
}

func newNode(parent int, action int, state State) node {
	return node{
		state:  state,
		action: action,
		parent: parent,
	}
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

// ucb scores the node for selection under a parent with parentVisits visits.
// Unvisited nodes always win selection. The exploration term divides by N+1.
func (n *node) ucb(c float64, parentVisits int) float64 {
	if n.visits == 0 {
		return math.MaxFloat64
	}

	lnN := math.Log(float64(max(1, parentVisits)))
	return n.value + c*math.Sqrt(lnN/float64(n.visits+1))
}

func (n *node) update(reward float64) {
	n.visits++
	n.rewards += reward
	n.value = n.rewards / float64(n.visits)
}
