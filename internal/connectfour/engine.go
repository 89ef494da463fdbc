package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// direction is a step between two neighbouring cells of a run.
type direction struct {
	dRow, dColumn int
}

// lineFamilies are checked in this order; the first run found wins.
var lineFamilies = []direction{
	{dRow: 0, dColumn: 1},  // horizontal
	{dRow: 1, dColumn: 0},  // vertical
	{dRow: 1, dColumn: 1},  // diagonal down-right
	{dRow: 1, dColumn: -1}, // diagonal down-left
}

// CreateInitialGameState returns the state a game starts from: empty board, red to move.
func CreateInitialGameState() entity.GameState {
	return entity.GameState{
		Board:         entity.CreateEmptyBoard(),
		CurrentPlayer: entity.PlayerA,
		Winner:        entity.CellEmpty,
		GameOver:      false,
	}
}

// DropPiece returns a copy of board with player's piece settled in the lowest
// empty cell of column. The given board is never modified.
func DropPiece(board entity.Board, column int, player entity.Cell) (entity.Board, error) {
	if err := validateMove(board, column, player); err != nil {
		return board, err
	}

	for row := entity.BoardRows - 1; row >= 0; row-- {
		if board[row][column] == entity.CellEmpty {
			board[row][column] = player
			return board, nil
		}
	}

	// unreachable while the gravity invariant holds
	return board, fmt.Errorf("%w: %d", apperror.ErrColumnFull, column)
}

// CheckWinner returns the owner of the first run of four found, or CellEmpty.
func CheckWinner(board entity.Board) entity.Cell {
	if line, ok := WinningLine(board); ok {
		first := line[0]
		return board[first.Row][first.Column]
	}
	return entity.CellEmpty
}

// WinningLine returns the cells of the first run of four in scan order.
func WinningLine(board entity.Board) ([]entity.Position, bool) {
	for _, dir := range lineFamilies {
		for row := range entity.BoardRows {
			for column := range entity.BoardColumns {
				if line, ok := runFrom(board, row, column, dir); ok {
					return line, true
				}
			}
		}
	}

	return nil, false
}

// IsBoardFull reports whether the top row has no empty cell left.
func IsBoardFull(board entity.Board) bool {
	for column := range entity.BoardColumns {
		if board[0][column] == entity.CellEmpty {
			return false
		}
	}
	return true
}

// MakeMove drops the current player's piece into column and advances the game.
func MakeMove(state entity.GameState, column int) (entity.GameState, error) {
	if err := state.ConfirmOngoingState(); err != nil {
		return state, err
	}

	board, err := DropPiece(state.Board, column, state.CurrentPlayer)
	if err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := state
	next.Board = board
	updateGameStatus(&next)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, column int, player entity.Cell) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPlayer, player)
	}

	full, err := entity.IsColumnFull(board, column)
	if err != nil {
		return err
	}

	if full {
		return fmt.Errorf("%w: %d", apperror.ErrColumnFull, column)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(state *entity.GameState) {
	switch winner := CheckWinner(state.Board); {
	case winner.IsPlayer():
		state.Winner = winner
		state.GameOver = true
	case IsBoardFull(state.Board):
		state.GameOver = true
	default:
		state.CurrentPlayer = state.CurrentPlayer.Opponent()
	}
}

func runFrom(board entity.Board, row, column int, dir direction) ([]entity.Position, bool) {
	endRow := row + dir.dRow*(entity.RunLength-1)
	endColumn := column + dir.dColumn*(entity.RunLength-1)
	if endRow < 0 || endRow >= entity.BoardRows || endColumn < 0 || endColumn >= entity.BoardColumns {
		return nil, false
	}

	player := board[row][column]
	if !player.IsPlayer() {
		return nil, false
	}

	line := make([]entity.Position, 0, entity.RunLength)
	for step := range entity.RunLength {
		r, c := row+dir.dRow*step, column+dir.dColumn*step
		if board[r][c] != player {
			return nil, false
		}
		line = append(line, entity.Position{Row: r, Column: c})
	}

	return line, true
}
