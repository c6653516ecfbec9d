package scheduler

import (
	"context"
	"time"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically expires pending bookings whose stay has already begun.
type Scheduler struct {
	bookingService bookingCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

// Start runs one sweep immediately and then one per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.LogAttrs(ctx, logger.InfoLevel, "scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.LogAttrs(context.Background(), logger.InfoLevel, "scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "booking expired",
			logger.String("booking_id", b.ID),
			logger.String("guest_id", b.GuestID),
			logger.String("listing_id", b.ListingID),
		)
	}
}
