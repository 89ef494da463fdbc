package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type sqliteTheme struct {
	conn *sql.DB
}

func NewSQLiteThemeRepository(conn *sql.DB) ThemeRepository {
	return &sqliteTheme{
		conn: conn,
	}
}

func (that *sqliteTheme) Get(ctx context.Context) (entity.Theme, error) {
	query := `SELECT value FROM preferences WHERE key = ?`

	var value string

	err := that.conn.QueryRowContext(ctx, query, entity.ThemeKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrThemeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't get theme: %w", err)
	}

	return entity.Theme(value), nil
}

func (that *sqliteTheme) Save(ctx context.Context, theme entity.Theme) error {
	query := `INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	_, err := that.conn.ExecContext(ctx, query, entity.ThemeKey, string(theme))
	if err != nil {
		return fmt.Errorf("can't save theme: %w", err)
	}

	return nil
}
