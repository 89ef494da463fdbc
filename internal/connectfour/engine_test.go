package connectfour

import (
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	a = entity.PlayerA
	b = entity.PlayerB
	e = entity.CellEmpty
)

func TestCreateInitialGameState(t *testing.T) {
	// When: a new game state is created
	state := CreateInitialGameState()

	// Then: the board should be empty and red should move first
	expected := entity.GameState{
		Board:         entity.Board{},
		CurrentPlayer: a,
		Winner:        e,
		GameOver:      false,
	}
	require.Equal(t, expected, state)
	assert.Equal(t, entity.StatusInProgress, state.Status())
}

func TestDropPiece(t *testing.T) {
	t.Run("Pieces stack from the floor up", func(t *testing.T) {
		// Given: an empty board
		board := entity.CreateEmptyBoard()

		// When: four pieces are dropped into the same column
		for i, expectedRow := range []int{3, 2, 1, 0} {
			player := a
			if i%2 == 1 {
				player = b
			}

			next, err := DropPiece(board, 2, player)
			require.NoError(t, err)

			// Then: each piece lands on top of the previous one
			assert.Equal(t, player, next[expectedRow][2])
			board = next
		}

		full, err := entity.IsColumnFull(board, 2)
		require.NoError(t, err)
		assert.True(t, full)
	})

	t.Run("Input board is not modified", func(t *testing.T) {
		// Given: a board with one piece
		board := entity.CreateEmptyBoard()
		board[3][0] = a
		snapshot := board

		// When: a piece is dropped
		next, err := DropPiece(board, 0, b)
		require.NoError(t, err)

		// Then: the original board keeps its content
		assert.Equal(t, snapshot, board)
		assert.NotEqual(t, board, next)
		assert.Equal(t, b, next[2][0])
	})

	t.Run("Error on full column", func(t *testing.T) {
		// Given: a full column
		board := entity.CreateEmptyBoard()
		board[0][1], board[1][1], board[2][1], board[3][1] = a, b, a, b

		// When: dropping another piece in it
		next, err := DropPiece(board, 1, a)

		// Then: ErrColumnFull should be returned and the board left as it was
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid column", func(t *testing.T) {
		board := entity.CreateEmptyBoard()

		for _, column := range []int{-1, 4, 20} {
			// When: dropping outside of the board
			_, err := DropPiece(board, column, a)

			// Then: ErrInvalidColumn should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidColumn)
		}
	})

	t.Run("Error on empty player", func(t *testing.T) {
		// When: dropping an empty cell
		_, err := DropPiece(entity.CreateEmptyBoard(), 0, e)

		// Then: ErrInvalidPlayer should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestDropPiece_GravityInvariant(t *testing.T) {
	// Given: a sequence of moves spread over the columns
	columns := []int{0, 3, 1, 1, 2, 0, 3, 3, 2, 0, 1, 2, 0, 3, 1, 2}
	board := entity.CreateEmptyBoard()
	player := a

	for _, column := range columns {
		// When: each piece is dropped
		next, err := DropPiece(board, column, player)
		require.NoError(t, err)
		board = next
		player = player.Opponent()

		// Then: no column has an empty cell below a filled one
		for c := range entity.BoardColumns {
			cells := board.Column(c)
			seenPiece := false
			for row := range entity.BoardRows {
				if cells[row] != e {
					seenPiece = true
					continue
				}
				assert.False(t, seenPiece, "gap under a piece in column %d:\n%s", c, board)
			}
		}
	}

	assert.True(t, IsBoardFull(board))
}

func TestCheckWinner(t *testing.T) {
	t.Run("Horizontal", func(t *testing.T) {
		// Given: row 0 owned by red
		board := entity.Board{
			{a, a, a, a},
			{b, b, a, b},
			{a, b, b, a},
			{b, a, b, b},
		}

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: red should be the winner
		assert.Equal(t, a, winner)
	})

	t.Run("Vertical", func(t *testing.T) {
		// Given: column 0 owned by black
		board := entity.Board{
			{b, e, e, e},
			{b, a, e, e},
			{b, a, e, e},
			{b, a, a, e},
		}

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: black should be the winner
		assert.Equal(t, b, winner)
	})

	t.Run("Diagonal down-right", func(t *testing.T) {
		// Given: the main diagonal owned by red
		board := entity.Board{
			{a, e, e, e},
			{b, a, e, e},
			{b, b, a, e},
			{a, b, b, a},
		}

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: red should be the winner
		assert.Equal(t, a, winner)
	})

	t.Run("Diagonal down-left", func(t *testing.T) {
		// Given: the anti-diagonal owned by black
		board := entity.Board{
			{e, e, e, b},
			{e, e, b, a},
			{e, b, a, a},
			{b, a, a, b},
		}

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: black should be the winner
		assert.Equal(t, b, winner)
	})

	t.Run("No false positive on a 2x2 corner", func(t *testing.T) {
		// Given: a 2x2 pattern in the corner
		board := entity.CreateEmptyBoard()
		board[0][0], board[0][1] = a, b
		board[1][0], board[1][1] = a, b

		// When: checking for a winner
		winner := CheckWinner(board)

		// Then: there should be no winner
		assert.Equal(t, e, winner)
	})

	t.Run("Three in a row is not a run", func(t *testing.T) {
		board := entity.Board{
			{e, e, e, e},
			{e, e, e, e},
			{e, e, e, e},
			{a, a, a, b},
		}

		assert.Equal(t, e, CheckWinner(board))
	})

	t.Run("Empty board", func(t *testing.T) {
		assert.Equal(t, e, CheckWinner(entity.CreateEmptyBoard()))
	})
}

func TestWinningLine(t *testing.T) {
	// Given: the anti-diagonal owned by red
	board := entity.Board{
		{e, e, e, a},
		{e, e, a, b},
		{e, a, b, b},
		{a, b, b, a},
	}

	// When: looking for the winning line
	line, ok := WinningLine(board)

	// Then: the four cells of the anti-diagonal should be returned
	require.True(t, ok)
	assert.Equal(t, []entity.Position{
		{Row: 0, Column: 3},
		{Row: 1, Column: 2},
		{Row: 2, Column: 1},
		{Row: 3, Column: 0},
	}, line)
}

func TestIsBoardFull(t *testing.T) {
	t.Run("Draw board", func(t *testing.T) {
		// Given: a full board without a run of four
		board := entity.Board{
			{a, a, b, b},
			{b, b, a, a},
			{a, a, b, b},
			{b, b, a, a},
		}

		// Then: the board is full and nobody wins
		assert.True(t, IsBoardFull(board))
		assert.Equal(t, e, CheckWinner(board))
	})

	t.Run("Top row with one gap", func(t *testing.T) {
		board := entity.Board{
			{a, e, b, b},
			{b, b, a, a},
			{a, a, b, b},
			{b, b, a, a},
		}

		assert.False(t, IsBoardFull(board))
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("Successful move flips the current player", func(t *testing.T) {
		// Given: a new game
		state := CreateInitialGameState()

		// When: red drops into column 1
		next, err := MakeMove(state, 1)
		require.NoError(t, err)

		// Then: the piece lands on the floor and black is to move
		assert.Equal(t, a, next.Board[3][1])
		assert.Equal(t, b, next.CurrentPlayer)
		assert.Equal(t, e, next.Winner)
		assert.False(t, next.GameOver)

		// Then: the previous snapshot is untouched
		assert.Equal(t, CreateInitialGameState(), state)
	})

	t.Run("Vertical win ends the game", func(t *testing.T) {
		// Given: the column sequence 0,1,0,2,0,3,0
		state := CreateInitialGameState()

		var err error
		for _, column := range []int{0, 1, 0, 2, 0, 3, 0} {
			state, err = MakeMove(state, column)
			require.NoError(t, err)
		}

		// Then: red owns column 0 and has won
		assert.Equal(t, [entity.BoardRows]entity.Cell{a, a, a, a}, state.Board.Column(0))
		assert.Equal(t, a, state.Winner)
		assert.True(t, state.GameOver)
		assert.Equal(t, entity.StatusWon, state.Status())
		assert.Equal(t, a, state.CurrentPlayer)
	})

	t.Run("Full board without a run is a draw", func(t *testing.T) {
		// Given: a sequence that fills the board without four in a row
		state := CreateInitialGameState()
		columns := []int{2, 0, 3, 1, 0, 2, 1, 3, 2, 0, 3, 1, 0, 2, 1, 3}

		var err error
		for i, column := range columns {
			state, err = MakeMove(state, column)
			require.NoError(t, err, "move %d into column %d", i, column)
		}

		// Then: the game is drawn
		assert.True(t, state.GameOver)
		assert.Equal(t, e, state.Winner)
		assert.Equal(t, entity.StatusDrawn, state.Status())
		assert.True(t, IsBoardFull(state.Board))
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: a finished game
		state := CreateInitialGameState()
		state.Winner = b
		state.GameOver = true

		// When: another move is attempted
		next, err := MakeMove(state, 2)

		// Then: ErrGameFinished should be returned and the state kept
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, state, next)
	})

	t.Run("Error on full column keeps the turn", func(t *testing.T) {
		// Given: column 3 filled up
		state := CreateInitialGameState()

		var err error
		for range entity.BoardRows {
			state, err = MakeMove(state, 3)
			require.NoError(t, err)
		}

		// When: dropping into column 3 again
		next, err := MakeMove(state, 3)

		// Then: ErrColumnFull should be returned and red is still to move
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Equal(t, state, next)
		assert.Equal(t, a, next.CurrentPlayer)
	})

	t.Run("Reset gives the initial state back", func(t *testing.T) {
		// Given: a game with some moves
		state := CreateInitialGameState()

		var err error
		for _, column := range []int{2, 2, 1} {
			state, err = MakeMove(state, column)
			require.NoError(t, err)
		}
		require.False(t, state.Board.IsEmpty())

		// When: the game is reset
		reset := CreateInitialGameState()

		// Then: it equals a brand-new game
		assert.Equal(t, CreateInitialGameState(), reset)
		assert.True(t, reset.Board.IsEmpty())
	})
}
