package game

const (
	Empty = 0
	X     = 1
	O     = -1
)

// ActionSpace is the number of cells, one action per cell
const ActionSpace = 9

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

func Opponent(player int) int {
	return -player
}
