package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	logger      logger.Logger
}

func NewReviewService(
	reviewRepo ports.ReviewRepo,
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

// Create stores the guest's review of a confirmed booking. A booking is
// reviewed at most once.
func (s *ReviewService) Create(ctx context.Context, callerID, bookingID string, in domain.CreateReviewInput) (*domain.Review, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = authz.Check(callerID, authz.Booking, authz.Review, target(booking)); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		GuestID:   callerID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	fields := validation.Struct(review)
	if booking.Status != domain.BookingStatusConfirmed {
		fields.Add("booking", "only confirmed bookings can be reviewed")
	}
	if err = fields.Err(); err != nil {
		return nil, err
	}

	if err = s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "review created",
		logger.String("review_id", review.ID),
		logger.String("booking_id", booking.ID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID string, req domain.PageRequest) (*domain.Page[*domain.Review], error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	page, err := s.reviewRepo.ListByListing(ctx, listingID, req)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if err = req.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}
