package db

import (
	"context"
	"errors"

	"github.com/healthmate/healthmate/internal/models"
)

// ErrDuplicateUsername is returned when registration targets a username
// that already exists.
var ErrDuplicateUsername = errors.New("username already exists")

// DbClient defines all persistence operations the handlers need.
// It abstracts SQLite so higher layers never depend on a specific DB.
type DbClient interface {
	CreateUser(ctx context.Context, user *models.User) (err error)
	GetUserByUsername(ctx context.Context, username string) (user *models.User, err error)
	CountUsers(ctx context.Context) (int64, error)

	InsertChat(ctx context.Context, chat *models.ChatRecord) error
	ListChatsByUser(ctx context.Context, userID int64) ([]models.ChatRecord, error)
	RecentChats(ctx context.Context, limit int) ([]models.ChatRecord, error)
	CountChats(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)

	Close() error
}
