package searcher

import (
	"fmt"
	"math"
	"mcts/metrics"

	"golang.org/x/exp/rand"
)

// tree is an arena of nodes rooted at index 0. Nodes refer to each other
// by index, so it must only grow by appending.
type tree struct {
	nodes       []node
	exploration float64
	perspective Perspective
	rng         *rand.Rand
	metrics     metrics.Collector
}

func newTree(state State, exploration float64, perspective Perspective, rng *rand.Rand, collector metrics.Collector) *tree {
	return &tree{
		nodes:       []node{newNode(noParent, noAction, state)},
		exploration: exploration,
		perspective: perspective,
		rng:         rng,
		metrics:     collector,
	}
}

// scoredPlayer returns the player whose reward is recorded at node i.
func (t *tree) scoredPlayer(i int) int {
	n := &t.nodes[i]
	if t.perspective == PerspectiveToMove || n.parent == noParent {
		return n.state.Player()
	}
	return t.nodes[n.parent].state.Player()
}

func (t *tree) simulate() error {
	leaf, depth := t.selects()

	var value float64
	if state := t.nodes[leaf].state; state.IsTerminal() {
		value = float64(state.Reward(t.scoredPlayer(leaf)))
		t.metrics.AddTerminalHit()
	} else {
		child, err := t.expand(leaf)
		if err != nil {
			return err
		}
		value, err = t.rollout(child)
		if err != nil {
			return err
		}
		leaf = child
		depth++
	}

	t.backup(leaf, value)
	t.metrics.ObserveDepth(depth)
	t.metrics.AddEpisode()
	return nil
}

// selects descends from the root to a leaf of the current tree and
// returns the leaf and its depth.
func (t *tree) selects() (int, int) {
	current, depth := 0, 0
	for !t.nodes[current].isLeaf() {
		current = t.pickChild(current)
		depth++
	}
	return current, depth
}

// pickChild returns the child with the greatest UCB score. Ties go to the
// earliest child.
func (t *tree) pickChild(parent int) int {
	p := &t.nodes[parent]

	maxIndex := p.children[0]
	maxScore := math.Inf(-1)
	for _, i := range p.children {
		score := t.nodes[i].ucb(t.exploration, p.visits)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// expand adds one child per legal action of the leaf, in legal action
// order, and returns the first one.
func (t *tree) expand(leaf int) (int, error) {
	state := t.nodes[leaf].state
	actions := state.LegalActions()
	if len(actions) == 0 {
		return noParent, fmt.Errorf("expanding node %d: %w", leaf, ErrNoLegalActions)
	}

	children := make([]int, 0, len(actions))
	for _, action := range actions {
		children = append(children, len(t.nodes))
		t.nodes = append(t.nodes, newNode(leaf, action, state.Play(action)))
	}
	t.nodes[leaf].children = children
	t.metrics.AddExpansion(len(children))

	return children[0], nil
}

// rollout plays uniformly random actions from the node's state until the
// game ends and scores the final state for the node's scored player.
func (t *tree) rollout(start int) (float64, error) {
	state := t.nodes[start].state
	player := t.scoredPlayer(start)

	for !state.IsTerminal() {
		actions := state.LegalActions()
		if len(actions) == 0 {
			return 0, fmt.Errorf("rolling out from node %d: %w", start, ErrNoLegalActions)
		}
		state = state.Play(actions[t.rng.Intn(len(actions))])
	}

	t.metrics.AddRollout()
	return float64(state.Reward(player)), nil
}

// backup walks from the node to the root, negating the reward at every ply.
func (t *tree) backup(from int, reward float64) {
	for i := from; i != noParent; i = t.nodes[i].parent {
		t.nodes[i].update(reward)
		reward = -reward
	}
}

// policy converts root child visits into a distribution over the action
// space and picks the most visited action. Ties go to the earliest child.
func (t *tree) policy(actionSpace int) (int, []float64, error) {
	root := &t.nodes[0]

	total := 0
	for _, i := range root.children {
		total += t.nodes[i].visits
	}
	if total == 0 {
		return noAction, nil, ErrNoVisits
	}

	probabilities := make([]float64, actionSpace)
	bestAction := noAction
	bestProbability := -1.0
	for _, i := range root.children {
		child := &t.nodes[i]
		if child.action < 0 || child.action >= actionSpace {
			return noAction, nil, fmt.Errorf("action %d in space of %d: %w", child.action, actionSpace, ErrActionOutOfRange)
		}

		probability := float64(child.visits) / float64(total)
		probabilities[child.action] = probability
		if probability > bestProbability {
			bestProbability = probability
			bestAction = child.action
		}
	}
	return bestAction, probabilities, nil
}
