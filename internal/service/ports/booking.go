package ports

import (
	"context"
	"time"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) (*domain.Page[*domain.Booking], error)
	ListByGuest(ctx context.Context, guestID string, page domain.PageRequest) (*domain.Page[*domain.Booking], error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, from []domain.BookingStatus, to domain.BookingStatus) (*domain.Booking, error)
	CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}
