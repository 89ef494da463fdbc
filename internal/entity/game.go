package entity

import "github.com/rocketscienceinc/connectfour-backend/internal/apperror"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

// GameState is a snapshot of one game. Moves never change a snapshot, they produce
// a new one.
type GameState struct {
	Board         Board `json:"board"`
	CurrentPlayer Cell  `json:"currentPlayer"`
	Winner        Cell  `json:"winner"`
	GameOver      bool  `json:"gameOver"`
}

func (that GameState) Status() Status {
	switch {
	case that.Winner.IsPlayer():
		return StatusWon
	case that.GameOver:
		return StatusDrawn
	default:
		return StatusInProgress
	}
}

func (that GameState) IsFinished() bool {
	return that.GameOver
}

func (that GameState) IsOngoing() bool {
	return !that.GameOver
}

// ConfirmOngoingState returns an error when no more moves can be played.
func (that GameState) ConfirmOngoingState() error {
	if that.Status() != StatusInProgress {
		return apperror.ErrGameFinished
	}

	return nil
}

// StatusMessage is the line shown above the board.
func (that GameState) StatusMessage() string {
	switch that.Status() {
	case StatusWon:
		return that.Winner.Mark() + " wins!"
	case StatusDrawn:
		return "It's a tie!"
	default:
		return ""
	}
}

// ResetLabel is the caption of the reset control.
func (that GameState) ResetLabel() string {
	if that.GameOver {
		return "New Game"
	}
	return "RESET BOARD"
}
