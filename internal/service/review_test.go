package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports/mocks"
)

type reviewDeps struct {
	reviews  *mocks.MockReviewRepo
	bookings *mocks.MockBookingRepo
	listings *mocks.MockListingRepo
	svc      *ReviewService
}

func newReviewDeps(t *testing.T) reviewDeps {
	d := reviewDeps{
		reviews:  mocks.NewMockReviewRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		listings: mocks.NewMockListingRepo(t),
	}
	d.svc = NewReviewService(d.reviews, d.bookings, d.listings, newTestLogger(t))
	return d
}

func confirmedBooking() *domain.Booking {
	b := pendingBooking()
	b.Status = domain.BookingStatusConfirmed
	return b
}

func TestReviewService_Create_Success(t *testing.T) {
	d := newReviewDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(confirmedBooking(), nil)
	d.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	review, err := d.svc.Create(context.Background(), guestID, bookingID, domain.CreateReviewInput{Rating: 5, Comment: "Great"})

	require.NoError(t, err)
	assert.Equal(t, bookingID, review.BookingID)
	assert.Equal(t, guestID, review.GuestID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Create_Pending(t *testing.T) {
	d := newReviewDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)

	_, err := d.svc.Create(context.Background(), guestID, bookingID, domain.CreateReviewInput{Rating: 4})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "booking")
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	d := newReviewDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(confirmedBooking(), nil)

	_, err := d.svc.Create(context.Background(), guestID, bookingID, domain.CreateReviewInput{Rating: 6})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "rating")
}

func TestReviewService_Create_HostForbidden(t *testing.T) {
	d := newReviewDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(confirmedBooking(), nil)

	_, err := d.svc.Create(context.Background(), hostID, bookingID, domain.CreateReviewInput{Rating: 5})

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	d := newReviewDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(confirmedBooking(), nil)
	d.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyReviewed)

	_, err := d.svc.Create(context.Background(), guestID, bookingID, domain.CreateReviewInput{Rating: 5})

	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}

func TestReviewService_ListByListing(t *testing.T) {
	d := newReviewDeps(t)
	req := domain.PageRequest{Page: 1, Size: 20}

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)
	d.reviews.EXPECT().ListByListing(mock.Anything, listingID, req).
		Return(&domain.Page[*domain.Review]{Items: []*domain.Review{{ID: "r1", Rating: 5}}, Total: 1}, nil)

	page, err := d.svc.ListByListing(context.Background(), listingID, req)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestReviewService_ListByListing_UnknownListing(t *testing.T) {
	d := newReviewDeps(t)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(nil, domain.ErrListingNotFound)

	_, err := d.svc.ListByListing(context.Background(), listingID, domain.PageRequest{Page: 1})

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
