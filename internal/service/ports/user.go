package ports

import (
	"context"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, id string) error
}
