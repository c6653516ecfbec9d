package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

const (
	hostID    = "11111111-1111-1111-1111-111111111111"
	guestID   = "22222222-2222-2222-2222-222222222222"
	listingID = "33333333-3333-3333-3333-333333333333"
	bookingID = "44444444-4444-4444-4444-444444444444"
	otherID   = "55555555-5555-5555-5555-555555555555"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func beachHouse() *domain.Listing {
	l := domain.NewListing()
	l.ID = listingID
	l.Title = "Beach House"
	l.Description = "Sea view"
	l.Location = "Malibu"
	l.PricePerNight = decimal.NewFromInt(150)
	l.MaxGuests = 6
	l.HostID = hostID
	return l
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             bookingID,
		ListingID:      listingID,
		GuestID:        guestID,
		HostID:         hostID,
		CheckInDate:    day("2024-12-01"),
		CheckOutDate:   day("2024-12-07"),
		NumberOfGuests: 4,
		TotalPrice:     decimal.NewFromInt(900),
		Status:         domain.BookingStatusPending,
	}
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	listings *mocks.MockListingRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockBookingNotifier
	svc      *BookingService
}

func newBookingDeps(t *testing.T) bookingDeps {
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		listings: mocks.NewMockListingRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	d.svc = NewBookingService(d.bookings, d.listings, d.users, d.notifier, newTestLogger(t))
	return d
}

func createInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ListingID: listingID,
		BookingPatch: domain.BookingPatch{
			CheckInDate:    ptr(day("2024-12-01")),
			CheckOutDate:   ptr(day("2024-12-07")),
			NumberOfGuests: ptr(4),
		},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	d := newBookingDeps(t)
	listing := beachHouse()
	host := &domain.User{ID: hostID, Username: "alice"}

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, hostID).Return(host, nil)
	d.notifier.EXPECT().NotifyBookingRequested(mock.Anything, host, listing, mock.Anything).Return()

	booking, err := d.svc.Create(context.Background(), guestID, createInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, guestID, booking.GuestID)
	assert.Equal(t, hostID, booking.HostID)
	assert.Equal(t, 6, booking.Nights())
	assert.True(t, decimal.NewFromInt(900).Equal(booking.TotalPrice))
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_Anonymous(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.Create(context.Background(), "", createInput())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestBookingService_Create_MissingFields(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.Create(context.Background(), guestID, domain.CreateBookingInput{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "listing_id")
	assert.Contains(t, verr.Fields, "check_in_date")
	assert.Contains(t, verr.Fields, "check_out_date")
	assert.Contains(t, verr.Fields, "number_of_guests")
}

func TestBookingService_Create_UnknownListing(t *testing.T) {
	d := newBookingDeps(t)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(nil, domain.ErrListingNotFound)

	_, err := d.svc.Create(context.Background(), guestID, createInput())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"invalid listing selected"}, verr.Fields["listing_id"])
}

func TestBookingService_Create_MalformedListingID(t *testing.T) {
	d := newBookingDeps(t)
	in := createInput()
	in.ListingID = "not-a-uuid"

	_, err := d.svc.Create(context.Background(), guestID, in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "listing_id")
}

func TestBookingService_Create_CheckOutBeforeCheckIn(t *testing.T) {
	d := newBookingDeps(t)
	in := createInput()
	in.CheckOutDate = ptr(day("2024-12-01"))

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)

	_, err := d.svc.Create(context.Background(), guestID, in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "check_out_date")
}

func TestBookingService_Create_OverCapacity(t *testing.T) {
	d := newBookingDeps(t)
	in := createInput()
	in.NumberOfGuests = ptr(7)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)

	_, err := d.svc.Create(context.Background(), guestID, in)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"this listing accepts at most 6 guests"}, verr.Fields["number_of_guests"])
}

func TestBookingService_Create_TotalPriceTooLarge(t *testing.T) {
	d := newBookingDeps(t)
	listing := beachHouse()
	listing.PricePerNight = decimal.RequireFromString("99999999.99")

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)

	_, err := d.svc.Create(context.Background(), guestID, createInput())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"the total price of this stay is too large, choose fewer nights"}, verr.Fields["check_out_date"])
}

func TestBookingService_Create_NumericOverflowIsValidation(t *testing.T) {
	d := newBookingDeps(t)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: numeric field overflow", domain.ErrValidation))

	_, err := d.svc.Create(context.Background(), guestID, createInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_OwnListing(t *testing.T) {
	d := newBookingDeps(t)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)

	_, err := d.svc.Create(context.Background(), hostID, createInput())

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"you cannot book your own listing"}, verr.Fields["listing_id"])
}

func TestBookingService_Create_ListingUnavailable(t *testing.T) {
	d := newBookingDeps(t)
	listing := beachHouse()
	listing.Available = false

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)

	_, err := d.svc.Create(context.Background(), guestID, createInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_Overlap(t *testing.T) {
	d := newBookingDeps(t)

	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDatesUnavailable)

	_, err := d.svc.Create(context.Background(), guestID, createInput())

	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		wantErr error
	}{
		{"guest", guestID, nil},
		{"host is not the owner", hostID, domain.ErrPermissionDenied},
		{"stranger", otherID, domain.ErrPermissionDenied},
		{"anonymous", "", domain.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)
			d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)

			booking, err := d.svc.Get(context.Background(), tt.caller, bookingID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, booking.ID)
		})
	}
}

func TestBookingService_Get_NotFound(t *testing.T) {
	d := newBookingDeps(t)
	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	_, err := d.svc.Get(context.Background(), guestID, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_List(t *testing.T) {
	d := newBookingDeps(t)
	f := domain.BookingFilter{CallerID: hostID, Page: domain.PageRequest{Page: 1, Size: 20}}
	page := &domain.Page[*domain.Booking]{Items: []*domain.Booking{pendingBooking()}, Total: 1}

	d.bookings.EXPECT().List(mock.Anything, f).Return(page, nil)

	got, err := d.svc.List(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
}

func TestBookingService_List_InvalidStatus(t *testing.T) {
	d := newBookingDeps(t)
	f := domain.BookingFilter{CallerID: guestID, Status: "archived", Page: domain.PageRequest{Page: 1}}

	_, err := d.svc.List(context.Background(), f)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
}

func TestBookingService_List_PageOutOfRange(t *testing.T) {
	d := newBookingDeps(t)
	f := domain.BookingFilter{CallerID: guestID, Page: domain.PageRequest{Page: 3, Size: 20}}

	d.bookings.EXPECT().List(mock.Anything, f).Return(&domain.Page[*domain.Booking]{Total: 21}, nil)

	_, err := d.svc.List(context.Background(), f)

	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestBookingService_MyBookings(t *testing.T) {
	d := newBookingDeps(t)
	req := domain.PageRequest{Page: 1, Size: 20}

	d.bookings.EXPECT().ListByGuest(mock.Anything, guestID, req).
		Return(&domain.Page[*domain.Booking]{Items: []*domain.Booking{pendingBooking()}, Total: 1}, nil)

	got, err := d.svc.MyBookings(context.Background(), guestID, req)

	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestBookingService_Update_RecomputesPrice(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(beachHouse(), nil)
	d.bookings.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CheckOutDate.Equal(day("2024-12-03"))
	})).Return(nil)

	booking, err := d.svc.Update(context.Background(), guestID, bookingID,
		domain.BookingPatch{CheckOutDate: ptr(day("2024-12-03"))}, true)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(booking.TotalPrice))
}

func TestBookingService_Update_TotalPriceTooLarge(t *testing.T) {
	d := newBookingDeps(t)
	listing := beachHouse()
	listing.PricePerNight = decimal.NewFromInt(50_000_000)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)

	_, err := d.svc.Update(context.Background(), guestID, bookingID,
		domain.BookingPatch{CheckOutDate: ptr(day("2024-12-03"))}, true)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "check_out_date")
}

func TestBookingService_Update_FullRequiresFields(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)

	_, err := d.svc.Update(context.Background(), guestID, bookingID,
		domain.BookingPatch{NumberOfGuests: ptr(2)}, false)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "check_in_date")
}

func TestBookingService_Update_NotPending(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusConfirmed

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)

	_, err := d.svc.Update(context.Background(), guestID, bookingID, domain.BookingPatch{}, true)

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Update_HostForbidden(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)

	_, err := d.svc.Update(context.Background(), hostID, bookingID, domain.BookingPatch{}, true)

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Delete(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.bookings.EXPECT().Delete(mock.Anything, bookingID).Return(nil)

	require.NoError(t, d.svc.Delete(context.Background(), guestID, bookingID))
}

func TestBookingService_Delete_NotPending(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusCancelled

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)

	err := d.svc.Delete(context.Background(), guestID, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	d := newBookingDeps(t)
	confirmed := pendingBooking()
	confirmed.Status = domain.BookingStatusConfirmed
	guest := &domain.User{ID: guestID, Username: "bob"}
	listing := beachHouse()

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, bookingID,
		[]domain.BookingStatus{domain.BookingStatusPending}, domain.BookingStatusConfirmed).Return(confirmed, nil)
	d.users.EXPECT().GetByID(mock.Anything, guestID).Return(guest, nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)
	d.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, guest, listing, confirmed).Return()

	booking, err := d.svc.Confirm(context.Background(), hostID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_GuestForbidden(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusConfirmed

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)

	_, err := d.svc.Confirm(context.Background(), guestID, bookingID)

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusCancelled

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)

	_, err := d.svc.Confirm(context.Background(), hostID, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Confirm_ConcurrentChange(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, bookingID, mock.Anything, domain.BookingStatusConfirmed).
		Return(nil, domain.ErrBookingStatusChanged)

	_, err := d.svc.Confirm(context.Background(), hostID, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingStatusChanged)
}

func TestBookingService_Cancel_ByGuestNotifiesHost(t *testing.T) {
	d := newBookingDeps(t)
	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled
	host := &domain.User{ID: hostID}
	listing := beachHouse()

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, bookingID,
		[]domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusPending},
		domain.BookingStatusCancelled).Return(cancelled, nil)
	d.users.EXPECT().GetByID(mock.Anything, hostID).Return(host, nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, host, listing, cancelled).Return()

	booking, err := d.svc.Cancel(context.Background(), guestID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ByHostNotifiesGuest(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusConfirmed
	cancelled := pendingBooking()
	cancelled.Status = domain.BookingStatusCancelled
	guest := &domain.User{ID: guestID}
	listing := beachHouse()

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, bookingID, mock.Anything, domain.BookingStatusCancelled).
		Return(cancelled, nil)
	d.users.EXPECT().GetByID(mock.Anything, guestID).Return(guest, nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, guest, listing, cancelled).Return()

	_, err := d.svc.Cancel(context.Background(), hostID, bookingID)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	d := newBookingDeps(t)
	b := pendingBooking()
	b.Status = domain.BookingStatusCancelled

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(b, nil)

	_, err := d.svc.Cancel(context.Background(), guestID, bookingID)

	assert.ErrorIs(t, err, domain.ErrBookingAlreadyCancelled)
}

func TestBookingService_Cancel_Stranger(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, bookingID).Return(pendingBooking(), nil)

	_, err := d.svc.Cancel(context.Background(), otherID, bookingID)

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestBookingService_CancelStale_Success(t *testing.T) {
	d := newBookingDeps(t)
	stale := pendingBooking()
	stale.Status = domain.BookingStatusCancelled
	guest := &domain.User{ID: guestID}
	listing := beachHouse()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	d.bookings.EXPECT().CancelStale(mock.Anything, today).Return([]*domain.Booking{stale}, nil)
	d.users.EXPECT().GetByID(mock.Anything, guestID).Return(guest, nil)
	d.listings.EXPECT().GetByID(mock.Anything, listingID).Return(listing, nil)
	d.notifier.EXPECT().NotifyBookingExpired(mock.Anything, guest, listing, stale).Return()

	cancelled, err := d.svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_CancelStale_Empty(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().CancelStale(mock.Anything, mock.Anything).Return(nil, nil)

	cancelled, err := d.svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestBookingService_CancelStale_Error(t *testing.T) {
	d := newBookingDeps(t)
	dbErr := errors.New("db error")

	d.bookings.EXPECT().CancelStale(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := d.svc.CancelStale(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestBookingService_Notify_UserLookupFails(t *testing.T) {
	d := newBookingDeps(t)

	d.users.EXPECT().GetByID(mock.Anything, guestID).Return(nil, domain.ErrUserNotFound)

	d.svc.notify(context.Background(), guestID, nil, pendingBooking(), d.notifier.NotifyBookingConfirmed)
}
