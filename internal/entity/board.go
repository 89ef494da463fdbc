package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	BoardRows    = 4
	BoardColumns = 4

	// RunLength is how many equal pieces in a line win the game.
	RunLength = 4
)

// Board is a fixed grid of cells. Row 0 is the top, row BoardRows-1 is the floor
// where pieces settle first. Being an array, a Board is copied on assignment.
type Board [BoardRows][BoardColumns]Cell

// Position addresses one cell of the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// CreateEmptyBoard returns a board with every cell empty.
func CreateEmptyBoard() Board {
	return Board{}
}

// IsColumnFull reports whether no empty cell is left in the column.
func IsColumnFull(board Board, column int) (bool, error) {
	if !ValidColumn(column) {
		return false, fmt.Errorf("%w: %d", apperror.ErrInvalidColumn, column)
	}

	// gravity keeps the top cell the last one to be filled
	return board[0][column] != CellEmpty, nil
}

func ValidColumn(column int) bool {
	return column >= 0 && column < BoardColumns
}

func (that Board) Cell(row, column int) Cell {
	return that[row][column]
}

// Column returns the cells of one column from top to bottom.
func (that Board) Column(column int) [BoardRows]Cell {
	var cells [BoardRows]Cell
	for row := range BoardRows {
		cells[row] = that[row][column]
	}
	return cells
}

// IsEmpty reports whether no piece has been dropped yet.
func (that Board) IsEmpty() bool {
	return that == Board{}
}

func (that Board) String() string {
	var sb strings.Builder
	for row := range BoardRows {
		for column := range BoardColumns {
			switch that[row][column] {
			case PlayerA:
				sb.WriteByte('R')
			case PlayerB:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
		if row < BoardRows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
