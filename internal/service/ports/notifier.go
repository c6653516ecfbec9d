package ports

import (
	"context"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, host *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, guest *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, recipient *domain.User, listing *domain.Listing, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, guest *domain.User, listing *domain.Listing, booking *domain.Booking)
}
