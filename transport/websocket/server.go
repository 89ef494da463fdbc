package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 1024
)

type uGame interface {
	GetGameState(ctx context.Context) entity.GameState
	MakeTurn(ctx context.Context, column int) (entity.GameState, error)
	ResetGame(ctx context.Context) entity.GameState
	Subscribe() (<-chan entity.GameState, func())
}

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type handlerFunc func(ctx context.Context, message *Message, conn *connection) error

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the board is shared by everybody who can reach the server
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameMove] = server.handleMove
	server.handlers[actionGameReset] = server.handleReset

	return server
}

// connection serializes writes, gorilla allows one writer at a time.
type connection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (that *connection) send(message Message) error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) ping() error {
	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	return that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// ServeHTTP upgrades the request and streams the game until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", req.RemoteAddr)

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{conn: wsConn}
	defer wsConn.Close()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	updates, unsubscribe := that.uGame.Subscribe()
	defer unsubscribe()

	if err = conn.send(stateMessage(that.uGame.GetGameState(ctx))); err != nil {
		log.Error("failed to send initial state", "error", err)
		return
	}

	go that.writeLoop(ctx, cancel, conn, updates)

	log.Info("client connected")
	that.readLoop(ctx, conn)
	log.Info("client disconnected")
}

func (that *Server) readLoop(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "readLoop")

	conn.conn.SetReadLimit(maxMessageSize)
	_ = conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.conn.SetPongHandler(func(string) error {
		return conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := conn.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("unexpected close", "error", err)
			}
			return
		}

		if err := that.processMessage(ctx, &message, conn); err != nil {
			log.Error("failed to process message", "action", message.Action, "error", err)
			return
		}
	}
}

func (that *Server) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *connection, updates <-chan entity.GameState) {
	log := that.logger.With("method", "writeLoop")

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.send(stateMessage(state)); err != nil {
				log.Error("failed to push state", "error", err)
				cancel()
				_ = conn.conn.Close()
				return
			}
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				log.Debug("ping failed", "error", err)
				cancel()
				_ = conn.conn.Close()
				return
			}
		}
	}
}

func (that *Server) processMessage(ctx context.Context, message *Message, conn *connection) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return conn.send(errorMessage(message.Action, "unknown action"))
	}

	return handler(ctx, message, conn)
}
