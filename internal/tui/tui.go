package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	title    = "Connect Four!"
	subtitle = "Get four of the same color in a row to win!"
)

type gameUseCase interface {
	GetGameState(ctx context.Context) entity.GameState
	MakeTurn(ctx context.Context, column int) (entity.GameState, error)
	ResetGame(ctx context.Context) entity.GameState
}

type themeService interface {
	Current(ctx context.Context) (entity.Theme, error)
	Select(ctx context.Context, value string) (entity.Theme, error)
}

// themeLoadedMsg carries the theme read from storage.
type themeLoadedMsg struct {
	theme entity.Theme
	err   error
}

// Model is the Bubble Tea model of the terminal client.
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	game   gameUseCase
	themes themeService

	state  entity.GameState
	theme  entity.Theme
	styles styles

	// set once the user picks a theme, a late load must not override it
	themeChosen bool

	cursor   int
	lastErr  string
	help     help.Model
	quitting bool
}

func NewModel(ctx context.Context, logger *slog.Logger, game gameUseCase, themes themeService) *Model {
	return &Model{
		ctx:    ctx,
		logger: logger.With("component", "tui"),
		game:   game,
		themes: themes,
		state:  game.GetGameState(ctx),
		theme:  entity.ThemeDefault,
		styles: newStyles(entity.ThemeDefault),
		help:   help.New(),
	}
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, logger *slog.Logger, game gameUseCase, themes themeService) error {
	program := tea.NewProgram(NewModel(ctx, logger, game, themes), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal client failed: %w", err)
	}

	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.loadTheme
}

func (m *Model) loadTheme() tea.Msg {
	theme, err := m.themes.Current(m.ctx)
	return themeLoadedMsg{theme: theme, err: err}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case themeLoadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load theme", "error", msg.err)
		}
		if m.themeChosen {
			break
		}
		m.setTheme(msg.theme)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		m.cursor = (m.cursor + entity.BoardColumns - 1) % entity.BoardColumns

	case key.Matches(msg, keys.Right):
		m.cursor = (m.cursor + 1) % entity.BoardColumns

	case key.Matches(msg, keys.Column):
		m.cursor = int(msg.String()[0] - '1')
		m.drop(m.cursor)

	case key.Matches(msg, keys.Drop):
		m.drop(m.cursor)

	case key.Matches(msg, keys.Reset):
		m.state = m.game.ResetGame(m.ctx)
		m.lastErr = ""

	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
	}

	return m, nil
}

// drop mirrors the web client: clicks on a full column or a finished game are ignored.
func (m *Model) drop(column int) {
	m.lastErr = ""

	if m.state.IsFinished() {
		return
	}

	state, err := m.game.MakeTurn(m.ctx, column)
	if err != nil {
		if !errors.Is(err, apperror.ErrColumnFull) {
			m.lastErr = err.Error()
		}
		m.logger.Debug("move rejected", "column", column, "error", err)
		return
	}

	m.state = state
}

func (m *Model) cycleTheme() {
	theme, err := m.themes.Select(m.ctx, string(m.theme.Next()))
	if err != nil {
		m.logger.Error("failed to save theme", "error", err)
		m.lastErr = "could not save theme"
		return
	}

	m.themeChosen = true
	m.setTheme(theme)
}

func (m *Model) setTheme(theme entity.Theme) {
	m.theme = theme
	m.styles = newStyles(theme)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.styles.Title.Render(title),
		InfoStyle.Render(subtitle),
		"",
		m.renderStatus(),
		m.renderCursor(),
		m.renderBoard(),
		m.styles.Button.Render(m.state.ResetLabel()) + InfoStyle.Render("  (r)"),
		"",
		m.renderThemes(),
	}

	if m.lastErr != "" {
		sections = append(sections, ErrorStyle.Render(m.lastErr))
	}

	sections = append(sections, "", m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) renderStatus() string {
	if message := m.state.StatusMessage(); message != "" {
		if m.state.Winner.IsPlayer() {
			return renderPiece(m.state.Winner) + m.styles.Status.Render("  wins!")
		}
		return m.styles.Status.Render(message)
	}

	return renderPiece(m.state.CurrentPlayer) + m.styles.Status.Render("  to move")
}

func (m *Model) renderCursor() string {
	cells := make([]string, entity.BoardColumns)
	for column := range entity.BoardColumns {
		marker := fmt.Sprintf(" %d ", column+1)
		if column == m.cursor && !m.state.IsFinished() {
			marker = " ▼ "
		}
		cells[column] = m.styles.Cursor.Render(marker)
	}

	return " " + strings.Join(cells, "")
}

func (m *Model) renderBoard() string {
	winning := make(map[entity.Position]bool, entity.RunLength)
	if line, ok := connectfour.WinningLine(m.state.Board); ok {
		for _, pos := range line {
			winning[pos] = true
		}
	}

	rows := make([]string, entity.BoardRows)
	for row := range entity.BoardRows {
		cells := make([]string, entity.BoardColumns)
		for column := range entity.BoardColumns {
			style := m.styles.Cell
			if winning[entity.Position{Row: row, Column: column}] {
				style = m.styles.Winning
			}
			cells[column] = style.Render(renderPiece(m.state.Board[row][column]))
		}
		rows[row] = strings.Join(cells, "")
	}

	return m.styles.Board.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderThemes() string {
	options := make([]string, 0, len(entity.Themes()))
	for _, theme := range entity.Themes() {
		label := strings.ToUpper(theme.Palette().Label)
		if theme == m.theme {
			options = append(options, m.styles.Selected.Render(label))
			continue
		}
		options = append(options, optionStyle(theme).Render(label))
	}

	return "Choose Theme:  " + strings.Join(options, " ")
}

func renderPiece(cell entity.Cell) string {
	switch cell {
	case entity.PlayerA:
		return RedPieceStyle.Render("●")
	case entity.PlayerB:
		return BlackPieceStyle.Render("●")
	default:
		return " "
	}
}

// State returns the game state the client currently shows.
func (m *Model) State() entity.GameState {
	return m.state
}

// Theme returns the theme the client is painted with.
func (m *Model) Theme() entity.Theme {
	return m.theme
}

// Cursor returns the column the next piece drops into.
func (m *Model) Cursor() int {
	return m.cursor
}
