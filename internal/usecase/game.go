package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const subscriberBuffer = 8

type GameUseCase interface {
	GetGameState(ctx context.Context) entity.GameState
	MakeTurn(ctx context.Context, column int) (entity.GameState, error)
	ResetGame(ctx context.Context) entity.GameState

	// Subscribe delivers every new state until cancel is called.
	Subscribe() (updates <-chan entity.GameState, cancel func())
}

// Table owns the one game being played and replaces it with the engine's result
// after each accepted move.
type Table struct {
	logger *slog.Logger

	mu    sync.RWMutex
	state entity.GameState

	subsMu      sync.Mutex
	subscribers map[int]chan entity.GameState
	nextSubID   int
}

func NewTable(logger *slog.Logger) *Table {
	return &Table{
		logger:      logger.With("component", "table"),
		state:       connectfour.CreateInitialGameState(),
		subscribers: make(map[int]chan entity.GameState),
	}
}

func (that *Table) GetGameState(_ context.Context) entity.GameState {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state
}

func (that *Table) MakeTurn(_ context.Context, column int) (entity.GameState, error) {
	log := that.logger.With("method", "MakeTurn", "column", column)

	that.mu.Lock()
	defer that.mu.Unlock()

	current := that.state
	if current.IsFinished() {
		return current, apperror.ErrGameFinished
	}

	full, err := entity.IsColumnFull(current.Board, column)
	if err != nil {
		return current, fmt.Errorf("failed make turn: %w", err)
	}

	if full {
		return current, fmt.Errorf("failed make turn: %w: %d", apperror.ErrColumnFull, column)
	}

	next, err := connectfour.MakeMove(current, column)
	if err != nil {
		return current, fmt.Errorf("failed make turn: %w", err)
	}

	that.state = next

	log.Debug("piece dropped", "player", current.CurrentPlayer, "status", next.Status())

	if next.IsFinished() {
		log.Info("game finished", "status", next.Status(), "winner", next.Winner)
	}

	// published under mu so subscribers see states in commit order
	that.publish(next)

	return next, nil
}

func (that *Table) ResetGame(_ context.Context) entity.GameState {
	state := connectfour.CreateInitialGameState()

	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = state

	that.logger.Debug("game reset")
	that.publish(state)

	return state
}

func (that *Table) Subscribe() (<-chan entity.GameState, func()) {
	ch := make(chan entity.GameState, subscriberBuffer)

	that.subsMu.Lock()
	id := that.nextSubID
	that.nextSubID++
	that.subscribers[id] = ch
	that.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			that.subsMu.Lock()
			delete(that.subscribers, id)
			that.subsMu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// publish never blocks: a subscriber with a full buffer misses the update.
// Callers hold mu.
func (that *Table) publish(state entity.GameState) {
	that.subsMu.Lock()
	defer that.subsMu.Unlock()

	for id, ch := range that.subscribers {
		select {
		case ch <- state:
		default:
			that.logger.Warn("subscriber is too slow, dropping update", "subscriber", id)
		}
	}
}
