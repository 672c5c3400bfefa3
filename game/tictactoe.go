package game

import (
	"fmt"
	"mcts/searcher"
	"mcts/utils"
)

// TicTacToe is an immutable 3x3 position. Cells hold X, O or Empty and are
// indexed row by row from 0 to 8.
type TicTacToe struct {
	Board         [ActionSpace]int
	CurrentPlayer int
	actions       []int
}

func NewTicTacToe() *TicTacToe {
	return FromBoard([ActionSpace]int{}, X)
}

func FromBoard(board [ActionSpace]int, player int) *TicTacToe {
	if player != X && player != O {
		panic(fmt.Sprintf("unknown player %d", player))
	}
	for i, cell := range board {
		if cell != Empty && cell != X && cell != O {
			panic(fmt.Sprintf("unknown value %d in cell %d", cell, i))
		}
	}

	return &TicTacToe{
		Board:         board,
		CurrentPlayer: player,
		actions:       emptyCells(board),
	}
}

func emptyCells(board [ActionSpace]int) []int {
	cells := make([]int, 0, ActionSpace)
	for i, cell := range board {
		if cell == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func (s *TicTacToe) Player() int {
	return s.CurrentPlayer
}

func (s *TicTacToe) LegalActions() []int {
	return s.actions
}

// Play marks the cell for the current player and passes the turn.
// It panics if the cell is not a legal action.
func (s *TicTacToe) Play(action int) searcher.State {
	if utils.FindIndex(s.actions, action) == -1 {
		panic(fmt.Sprintf("illegal action %d, legal actions are %v", action, s.actions))
	}

	board := s.Board
	board[action] = s.CurrentPlayer
	return &TicTacToe{
		Board:         board,
		CurrentPlayer: Opponent(s.CurrentPlayer),
		actions:       emptyCells(board),
	}
}

func (s *TicTacToe) IsWinner(player int) bool {
	for _, line := range lines {
		if s.Board[line[0]] == player && s.Board[line[1]] == player && s.Board[line[2]] == player {
			return true
		}
	}
	return false
}

func (s *TicTacToe) IsTerminal() bool {
	return s.IsWinner(X) || s.IsWinner(O) || len(s.actions) == 0
}

// Reward is +1 if player has three in a row, -1 if the opponent has, and 0
// for draws and unfinished games.
func (s *TicTacToe) Reward(player int) int {
	if s.IsWinner(player) {
		return 1
	}
	if s.IsWinner(Opponent(player)) {
		return -1
	}
	return 0
}
