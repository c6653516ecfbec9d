package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, telegram_chat_id, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, "username", username)
}

// getBy looks a user up by a unique column. column is never client input.
func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, telegram_chat_id, created_at
              FROM users
              WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
