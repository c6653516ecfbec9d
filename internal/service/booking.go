package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/validation"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

type notifyFunc func(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking)

func target(b *domain.Booking) authz.Target {
	return authz.Target{HostID: b.HostID, GuestID: b.GuestID}
}

func (s *BookingService) Create(ctx context.Context, callerID string, in domain.CreateBookingInput) (*domain.Booking, error) {
	if err := authz.Check(callerID, authz.Booking, authz.Create, authz.Target{}); err != nil {
		return nil, err
	}

	fields := domain.FieldErrors{}
	if in.ListingID == "" {
		fields.Add("listing_id", msgRequired)
	} else if _, err := uuid.Parse(in.ListingID); err != nil {
		fields.Add("listing_id", "invalid listing selected")
	}
	for _, f := range in.Missing() {
		fields.Add(f, msgRequired)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, in.ListingID)
	if errors.Is(err, domain.ErrListingNotFound) {
		return nil, domain.NewFieldError("listing_id", "invalid listing selected")
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		GuestID:   callerID,
		HostID:    listing.HostID,
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	booking.Apply(in.BookingPatch)

	fields = validateBooking(booking, listing)
	if callerID == listing.HostID {
		fields.Add("listing_id", "you cannot book your own listing")
	}
	if !listing.Available {
		fields.Add("listing_id", "this listing is not available for booking")
	}
	if err = fields.Err(); err != nil {
		return nil, err
	}
	booking.TotalPrice = booking.Price(listing.PricePerNight)

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", listing.ID),
		logger.String("guest_id", callerID),
	)

	go s.notify(context.WithoutCancel(ctx), listing.HostID, listing, booking, s.notifier.NotifyBookingRequested)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, callerID, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = authz.Check(callerID, authz.Booking, authz.Retrieve, target(booking)); err != nil {
		return nil, err
	}

	return booking, nil
}

// List returns bookings the caller made together with bookings on listings
// the caller hosts.
func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) (*domain.Page[*domain.Booking], error) {
	if err := authz.Check(f.CallerID, authz.Booking, authz.List, authz.Target{}); err != nil {
		return nil, err
	}

	fields := domain.FieldErrors{}
	if f.Status != "" && !f.Status.Valid() {
		fields.Add("status", fmt.Sprintf("select a valid choice, %s is not one of the available choices", f.Status))
	}
	if f.ListingID != "" {
		if _, err := uuid.Parse(f.ListingID); err != nil {
			fields.Add("listing", "select a valid choice, that choice is not one of the available choices")
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	page, err := s.bookingRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if err = f.Page.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}

// MyBookings returns the caller's own bookings ordered by check-in date.
func (s *BookingService) MyBookings(ctx context.Context, callerID string, req domain.PageRequest) (*domain.Page[*domain.Booking], error) {
	if err := authz.Check(callerID, authz.Booking, authz.MyBookings, authz.Target{}); err != nil {
		return nil, err
	}

	page, err := s.bookingRepo.ListByGuest(ctx, callerID, req)
	if err != nil {
		return nil, fmt.Errorf("list guest bookings: %w", err)
	}
	if err = req.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}

// Update changes dates, guests or requests of a pending booking and
// recomputes its total price.
func (s *BookingService) Update(ctx context.Context, callerID, id string, p domain.BookingPatch, partial bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	op := authz.Update
	if partial {
		op = authz.PartialUpdate
	}
	if err = authz.Check(callerID, authz.Booking, op, target(booking)); err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	if !partial {
		fields := domain.FieldErrors{}
		for _, f := range p.Missing() {
			fields.Add(f, msgRequired)
		}
		if err = fields.Err(); err != nil {
			return nil, err
		}
	}

	listing, err := s.listingRepo.GetByID(ctx, booking.ListingID)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	booking.Apply(p)
	if err = validateBooking(booking, listing).Err(); err != nil {
		return nil, err
	}
	booking.TotalPrice = booking.Price(listing.PricePerNight)
	booking.UpdatedAt = time.Now().UTC()

	if err = s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking updated",
		logger.String("booking_id", booking.ID),
	)

	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, callerID, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = authz.Check(callerID, authz.Booking, authz.Delete, target(booking)); err != nil {
		return err
	}

	if booking.Status != domain.BookingStatusPending {
		return domain.ErrBookingNotPending
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking deleted",
		logger.String("booking_id", id),
	)

	return nil
}

// Cancel moves a pending or confirmed booking to cancelled. Cancelling a
// cancelled booking fails with ErrBookingAlreadyCancelled.
func (s *BookingService) Cancel(ctx context.Context, callerID, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = authz.Check(callerID, authz.Booking, authz.Cancel, target(booking)); err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingAlreadyCancelled
	}

	to := domain.BookingStatusCancelled
	updated, err := s.bookingRepo.UpdateStatus(ctx, id, domain.Sources(to), to)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking cancelled",
		logger.String("booking_id", id),
		logger.String("cancelled_by", callerID),
	)

	recipient := updated.HostID
	if callerID == updated.HostID {
		recipient = updated.GuestID
	}
	go s.notify(context.WithoutCancel(ctx), recipient, nil, updated, s.notifier.NotifyBookingCancelled)

	return updated, nil
}

func (s *BookingService) Confirm(ctx context.Context, callerID, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = authz.Check(callerID, authz.Booking, authz.Confirm, target(booking)); err != nil {
		return nil, err
	}

	to := domain.BookingStatusConfirmed
	if !booking.Status.CanTransition(to) {
		return nil, domain.ErrBookingNotPending
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, domain.Sources(to), to)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking confirmed",
		logger.String("booking_id", id),
		logger.String("listing_id", updated.ListingID),
	)

	go s.notify(context.WithoutCancel(ctx), updated.GuestID, nil, updated, s.notifier.NotifyBookingConfirmed)

	return updated, nil
}

// CancelStale cancels pending bookings whose check-in date has passed.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	cancelled, err := s.bookingRepo.CancelStale(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "stale bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notify(ctx, b.GuestID, nil, b, s.notifier.NotifyBookingExpired)
	}
}

// notify loads the recipient (and the listing when nil) and hands them to send.
func (s *BookingService) notify(ctx context.Context, userID string, listing *domain.Listing, b *domain.Booking, send notifyFunc) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if listing == nil {
		listing, err = s.listingRepo.GetByID(ctx, b.ListingID)
		if err != nil {
			s.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to get listing for notification",
				logger.String("listing_id", b.ListingID),
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			return
		}
	}

	send(ctx, user, listing, b)
}

func validateBooking(b *domain.Booking, listing *domain.Listing) domain.FieldErrors {
	fields := validation.Struct(b)
	if b.NumberOfGuests > listing.MaxGuests {
		fields.Add("number_of_guests", fmt.Sprintf("this listing accepts at most %d guests", listing.MaxGuests))
	}
	if b.CheckOutDate.After(b.CheckInDate) && b.Price(listing.PricePerNight).GreaterThanOrEqual(maxPrice) {
		fields.Add("check_out_date", "the total price of this stay is too large, choose fewer nights")
	}
	return fields
}
