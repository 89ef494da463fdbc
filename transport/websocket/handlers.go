package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/transport/view"
)

const (
	actionGameState = "game:state"
	actionGameMove  = "game:move"
	actionGameReset = "game:reset"
)

type movePayload struct {
	Column *int `json:"column"`
}

// handleGameState answers with the current state to the asking client only.
func (that *Server) handleGameState(ctx context.Context, _ *Message, conn *connection) error {
	return conn.send(stateMessage(that.uGame.GetGameState(ctx)))
}

// handleMove applies the move. The new state reaches every client, this one
// included, through the subscription; only errors are answered directly.
func (that *Server) handleMove(ctx context.Context, message *Message, conn *connection) error {
	log := that.logger.With("method", "handleMove")

	var payload movePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil || payload.Column == nil {
		return conn.send(errorMessage(message.Action, "column is required"))
	}

	if _, err := that.uGame.MakeTurn(ctx, *payload.Column); err != nil {
		log.Debug("move rejected", "column", *payload.Column, "error", err)
		return conn.send(errorMessage(message.Action, err.Error()))
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ *Message, _ *connection) error {
	that.uGame.ResetGame(ctx)
	return nil
}

func stateMessage(state entity.GameState) Message {
	payload, err := json.Marshal(view.NewGame(state))
	if err != nil {
		// a GameState always encodes
		panic(fmt.Errorf("failed to marshal state: %w", err))
	}

	return Message{
		Action:  actionGameState,
		Payload: payload,
	}
}

func errorMessage(action, text string) Message {
	return Message{
		Action: action,
		Error:  text,
	}
}
