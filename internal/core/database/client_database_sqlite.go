package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/healthmate/healthmate/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

// NewDatabaseClient opens (or creates) the SQLite database file at path
// and bootstraps the schema. Use ":memory:" for tests.
func NewDatabaseClient(ctx context.Context, path string) (DbClient, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite supports a single writer; more connections only queue.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Implementing the db interface for user

func (c *DatabaseClient) CreateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	// Check-then-insert; the UNIQUE constraint backstops the race.
	existing, err := c.GetUserByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateUsername
	}

	const q = `INSERT INTO users (username, password) VALUES (?, ?)`
	res, err := c.db.ExecContext(ctx, q, user.Username, user.Password)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (c *DatabaseClient) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `SELECT id, username, password FROM users WHERE username = ?`
	var u models.User
	err := c.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *DatabaseClient) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// Implementing the db interface for chat records

func (c *DatabaseClient) InsertChat(ctx context.Context, chat *models.ChatRecord) error {
	if chat == nil {
		return errors.New("nil chat record")
	}
	const q = `
		INSERT INTO chat_history (user_id, category, user_message, ai_response)
		VALUES (?, ?, ?, ?)
	`
	res, err := c.db.ExecContext(ctx, q, chat.UserID, chat.Category, chat.UserMessage, chat.AIResponse)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	chat.ID = id
	return nil
}

func (c *DatabaseClient) ListChatsByUser(ctx context.Context, userID int64) ([]models.ChatRecord, error) {
	const q = `
		SELECT id, user_id, category, user_message, ai_response
		FROM chat_history
		WHERE user_id = ?
	`
	rows, err := c.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanChats(rows)
}

func (c *DatabaseClient) RecentChats(ctx context.Context, limit int) ([]models.ChatRecord, error) {
	const q = `
		SELECT id, user_id, category, user_message, ai_response
		FROM chat_history
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := c.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanChats(rows)
}

func (c *DatabaseClient) CountChats(ctx context.Context) (int64, error) {
	var n int64
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_history`).Scan(&n)
	return n, err
}

func (c *DatabaseClient) CountByCategory(ctx context.Context) (map[string]int64, error) {
	const q = `
		SELECT category, COUNT(category)
		FROM chat_history
		GROUP BY category
	`
	rows, err := c.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		out[category] = count
	}
	return out, rows.Err()
}

func scanChats(rows *sql.Rows) ([]models.ChatRecord, error) {
	var out []models.ChatRecord
	for rows.Next() {
		var ch models.ChatRecord
		if err := rows.Scan(&ch.ID, &ch.UserID, &ch.Category, &ch.UserMessage, &ch.AIResponse); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}
