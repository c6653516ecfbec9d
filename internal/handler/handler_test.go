package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/auth"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler/dto"
	hmocks "github.com/tribertmuto/alx-travel-app-0x01/internal/handler/mocks"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/router"
	"github.com/wb-go/wbf/logger"
)

const (
	hostID    = "0b0e4a33-8f0e-4b7e-9d53-5a2f1f1e0a01"
	guestID   = "0b0e4a33-8f0e-4b7e-9d53-5a2f1f1e0a02"
	otherID   = "0b0e4a33-8f0e-4b7e-9d53-5a2f1f1e0a03"
	listingID = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e01"
	bookingID = "6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e02"
)

type testDeps struct {
	listings *hmocks.MockListingSvc
	bookings *hmocks.MockBookingSvc
	reviews  *hmocks.MockReviewSvc
	users    *hmocks.MockUserSvc
	tokens   *auth.TokenManager
	router   http.Handler
}

func setupRouter(t *testing.T) *testDeps {
	t.Helper()

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	d := &testDeps{
		listings: hmocks.NewMockListingSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		reviews:  hmocks.NewMockReviewSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		tokens:   auth.NewTokenManager("test-secret", time.Hour),
	}

	h := NewHandler(d.listings, d.bookings, d.reviews, d.users, Options{
		CookieName:  "session_id",
		CookieTTL:   time.Hour,
		MaxPageSize: 50,
	})
	d.router = router.InitRouter("test", h, middleware.Authenticate(d.tokens, nil, "session_id", log))

	return d
}

// do sends the request as userID, or anonymously when userID is empty.
func (d *testDeps) do(t *testing.T, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if userID != "" {
		token, err := d.tokens.Issue(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func beachHouse() *domain.Listing {
	return &domain.Listing{
		ID:            listingID,
		Title:         "Beach House",
		Description:   "Ocean view",
		Location:      "Malibu, CA",
		PropertyType:  domain.PropertyHouse,
		PricePerNight: decimal.NewFromInt(150),
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"wifi"},
		Available:     true,
		HostID:        hostID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func decemberBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             bookingID,
		ListingID:      listingID,
		GuestID:        guestID,
		HostID:         hostID,
		CheckInDate:    day("2024-12-01"),
		CheckOutDate:   day("2024-12-07"),
		NumberOfGuests: 4,
		TotalPrice:     decimal.NewFromInt(900),
		Status:         status,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().
		Create(mock.Anything, hostID, mock.MatchedBy(func(p domain.ListingPatch) bool {
			return *p.Title == "Beach House" && p.PricePerNight.Equal(decimal.NewFromInt(150)) &&
				*p.MaxGuests == 6 && p.Bedrooms == nil
		})).
		Return(beachHouse(), nil)

	w := d.do(t, http.MethodPost, "/api/listings/",
		`{"title":"Beach House","description":"Ocean view","location":"Malibu, CA","price_per_night":150,"max_guests":6}`,
		hostID)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.ListingResponse](t, w)
	assert.Equal(t, listingID, resp.ID)
	assert.Equal(t, "150.00", resp.PricePerNight)
	assert.Equal(t, hostID, resp.HostID)
}

func TestHandler_CreateListing_Anonymous(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodPost, "/api/listings/", `{"title":"Beach House"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
}

func TestHandler_CreateListing_InvalidBearerOnPublicRoute(t *testing.T) {
	d := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/listings/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateListing_NegativePrice(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Create(mock.Anything, hostID, mock.Anything).
		Return(nil, domain.NewFieldError("price_per_night", "ensure this value is greater than or equal to 0"))

	w := d.do(t, http.MethodPost, "/api/listings/", `{"price_per_night":-1}`, hostID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, domain.ErrValidation.Error(), resp.Error)
	assert.Equal(t, []string{"ensure this value is greater than or equal to 0"}, resp.FieldErrors["price_per_night"])
}

func TestHandler_CreateListing_WrongType(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodPost, "/api/listings/", `{"max_guests":"many"}`, hostID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Contains(t, resp.FieldErrors, "max_guests")
}

func TestHandler_CreateListing_MalformedJSON(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodPost, "/api/listings/", `{"title":`, hostID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_Success(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Get(mock.Anything, listingID).
		Return(&domain.ListingDetails{Listing: *beachHouse(), RecentBookingsCount: 2}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/"+listingID+"/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ListingDetailsResponse](t, w)
	assert.Equal(t, "Beach House", resp.Title)
	assert.Equal(t, 2, resp.RecentBookingsCount)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Get(mock.Anything, listingID).Return(nil, domain.ErrListingNotFound)

	w := d.do(t, http.MethodGet, "/api/listings/"+listingID+"/", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetListing_MalformedID(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodGet, "/api/listings/not-a-uuid/", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrListingNotFound.Error(), decode[dto.ErrorResponse](t, w).Error)
}

func TestHandler_UpdateListing_ByNonHost(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Update(mock.Anything, otherID, listingID, mock.Anything, false).
		Return(nil, domain.ErrPermissionDenied)

	w := d.do(t, http.MethodPut, "/api/listings/"+listingID+"/", `{"title":"Mine now"}`, otherID)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateListing_MalformedBody(t *testing.T) {
	tests := []struct {
		name   string
		caller string
		want   int
	}{
		{"non-host is refused", otherID, http.StatusForbidden},
		{"host sees the body error", hostID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)

			d.listings.EXPECT().Get(mock.Anything, listingID).
				Return(&domain.ListingDetails{Listing: *beachHouse()}, nil)

			w := d.do(t, http.MethodPatch, "/api/listings/"+listingID+"/", `{"max_guests":"many"}`, tt.caller)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_UpdateListing_MalformedBodyUnknownListing(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Get(mock.Anything, listingID).Return(nil, domain.ErrListingNotFound)

	w := d.do(t, http.MethodPut, "/api/listings/"+listingID+"/", `{"title":`, hostID)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateListing_Anonymous(t *testing.T) {
	d := setupRouter(t)

	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		w := d.do(t, method, "/api/listings/"+listingID+"/", `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
	}
}

func TestHandler_PatchListing_Partial(t *testing.T) {
	d := setupRouter(t)

	updated := beachHouse()
	updated.Available = false
	d.listings.EXPECT().
		Update(mock.Anything, hostID, listingID, mock.MatchedBy(func(p domain.ListingPatch) bool {
			return p.Available != nil && !*p.Available && p.Title == nil
		}), true).
		Return(updated, nil)

	w := d.do(t, http.MethodPatch, "/api/listings/"+listingID+"/", `{"available":false}`, hostID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[dto.ListingResponse](t, w).Available)
}

func TestHandler_DeleteListing(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not host", domain.ErrPermissionDenied, http.StatusForbidden},
		{"active bookings", domain.ErrListingHasActiveBookings, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.listings.EXPECT().Delete(mock.Anything, hostID, listingID).Return(tt.err)

			w := d.do(t, http.MethodDelete, "/api/listings/"+listingID+"/", "", hostID)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_ListListings_FiltersAndPagination(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.ListingFilter) bool {
			return f.Location == "Malibu" && f.Search == "ocean" && f.Ordering == "-price_per_night" &&
				f.MinPrice.Equal(decimal.NewFromInt(100)) && f.MaxPrice == nil &&
				f.Page == domain.PageRequest{Page: 2, Size: 1}
		})).
		Return(&domain.Page[*domain.Listing]{Items: []*domain.Listing{beachHouse()}, Total: 3}, nil)

	w := d.do(t, http.MethodGet,
		"/api/listings/?location=Malibu&search=ocean&ordering=-price_per_night&min_price=100&page=2&page_size=1", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PageResponse[dto.ListingResponse]](t, w)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Next)
	require.NotNil(t, resp.Previous)
	assert.Contains(t, *resp.Next, "page=3")
	assert.True(t, strings.HasPrefix(*resp.Next, "http://example.com/api/listings/?"))
	assert.NotContains(t, *resp.Previous, "page=")
}

func TestHandler_ListListings_EmptyPageHasNullLinks(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().List(mock.Anything, mock.Anything).
		Return(&domain.Page[*domain.Listing]{Items: []*domain.Listing{}}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, w.Body.String())
}

func TestHandler_ListListings_PageSizeCapped(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.ListingFilter) bool { return f.Page.Size == 50 })).
		Return(&domain.Page[*domain.Listing]{Items: []*domain.Listing{}}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/?page_size=1000", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListListings_InvalidPage(t *testing.T) {
	d := setupRouter(t)

	for _, page := range []string{"0", "-1", "abc"} {
		w := d.do(t, http.MethodGet, "/api/listings/?page="+page, "", "")
		assert.Equal(t, http.StatusNotFound, w.Code, page)
	}
}

func TestHandler_ListListings_PageOutOfRange(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPage)

	w := d.do(t, http.MethodGet, "/api/listings/?page=9", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListListings_BadPrice(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodGet, "/api/listings/?max_price=cheap", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[dto.ErrorResponse](t, w).FieldErrors, "max_price")
}

func TestHandler_AvailableListings_Success(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().
		Available(mock.Anything, mock.MatchedBy(func(q domain.AvailabilityQuery) bool {
			return q.CheckIn.Equal(day("2024-12-10")) && q.CheckOut.Equal(day("2024-12-12"))
		})).
		Return(&domain.Page[*domain.Listing]{Items: []*domain.Listing{beachHouse()}, Total: 1}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/available/?check_in=2024-12-10&check_out=2024-12-12", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PageResponse[dto.ListingResponse]](t, w)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, listingID, resp.Results[0].ID)
}

func TestHandler_AvailableListings_BadParams(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodGet, "/api/listings/available/?check_in=12/10/2024", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[dto.ErrorResponse](t, w)
	assert.Equal(t, []string{dto.DateFormatMessage}, resp.FieldErrors["check_in"])
	assert.Equal(t, []string{"this parameter is required"}, resp.FieldErrors["check_out"])
}

func TestHandler_AvailableListings_CheckOutNotAfterCheckIn(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().Available(mock.Anything, mock.Anything).
		Return(nil, domain.NewFieldError("check_out", "must be after check_in"))

	w := d.do(t, http.MethodGet, "/api/listings/available/?check_in=2024-12-12&check_out=2024-12-12", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListingsByLocation(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().ByLocation(mock.Anything, "malibu", domain.PageRequest{Page: 1, Size: domain.DefaultPageSize}).
		Return(&domain.Page[*domain.Listing]{Items: []*domain.Listing{beachHouse()}, Total: 1}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/by_location/?location=malibu", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Malibu, CA", decode[dto.PageResponse[dto.ListingResponse]](t, w).Results[0].Location)
}

func TestHandler_ListingsByLocation_Missing(t *testing.T) {
	d := setupRouter(t)

	d.listings.EXPECT().ByLocation(mock.Anything, "", mock.Anything).
		Return(nil, domain.NewFieldError("location", "this field is required"))

	w := d.do(t, http.MethodGet, "/api/listings/by_location/", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListingReviews(t *testing.T) {
	d := setupRouter(t)

	d.reviews.EXPECT().ListByListing(mock.Anything, listingID, mock.Anything).
		Return(&domain.Page[*domain.Review]{
			Items: []*domain.Review{{ID: "r1", BookingID: bookingID, GuestID: guestID, Rating: 5, CreatedAt: time.Now()}},
			Total: 1,
		}, nil)

	w := d.do(t, http.MethodGet, "/api/listings/"+listingID+"/reviews/", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[dto.PageResponse[dto.ReviewResponse]](t, w).Results[0].Rating)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().
		Create(mock.Anything, guestID, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
			return in.ListingID == listingID && in.CheckInDate.Equal(day("2024-12-01")) &&
				in.CheckOutDate.Equal(day("2024-12-07")) && *in.NumberOfGuests == 4
		})).
		Return(decemberBooking(domain.BookingStatusPending), nil)

	w := d.do(t, http.MethodPost, "/api/bookings/",
		`{"listing_id":"`+listingID+`","check_in_date":"2024-12-01","check_out_date":"2024-12-07","number_of_guests":4}`,
		guestID)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.BookingResponse](t, w)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2024-12-01", resp.CheckInDate)
	assert.Equal(t, 6, resp.Nights)
	assert.Equal(t, "900.00", resp.TotalPrice)
}

func TestHandler_CreateBooking_Overlap(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Create(mock.Anything, otherID, mock.Anything).Return(nil, domain.ErrDatesUnavailable)

	w := d.do(t, http.MethodPost, "/api/bookings/",
		`{"listing_id":"`+listingID+`","check_in_date":"2024-12-03","check_out_date":"2024-12-05","number_of_guests":2}`,
		otherID)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		err   error
	}{
		{"dates reversed", "check_out_date", domain.NewFieldError("check_out_date", "must be after check_in_date")},
		{"too many guests", "number_of_guests", domain.NewFieldError("number_of_guests", "this listing accepts at most 6 guests")},
		{"own listing", "listing_id", domain.NewFieldError("listing_id", "you cannot book your own listing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.bookings.EXPECT().Create(mock.Anything, guestID, mock.Anything).Return(nil, tt.err)

			w := d.do(t, http.MethodPost, "/api/bookings/", `{"listing_id":"`+listingID+`"}`, guestID)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[dto.ErrorResponse](t, w).FieldErrors, tt.field)
		})
	}
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodPost, "/api/bookings/",
		`{"listing_id":"`+listingID+`","check_in_date":"2024-13-01","check_out_date":"2024-12-07"}`, guestID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{dto.DateFormatMessage}, decode[dto.ErrorResponse](t, w).FieldErrors["check_in_date"])
}

func TestHandler_CreateBooking_Anonymous(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodPost, "/api/bookings/", `{}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ConfirmBooking_Scenario(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Confirm(mock.Anything, hostID, bookingID).
		Return(decemberBooking(domain.BookingStatusConfirmed), nil).Once()
	d.bookings.EXPECT().Confirm(mock.Anything, guestID, bookingID).
		Return(nil, domain.ErrPermissionDenied).Once()

	w := d.do(t, http.MethodPost, "/api/bookings/"+bookingID+"/confirm/", "", hostID)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.BookingActionResponse](t, w)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.NotEmpty(t, resp.Message)

	w = d.do(t, http.MethodPost, "/api/bookings/"+bookingID+"/confirm/", "", guestID)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ConfirmBooking_NotPending(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Confirm(mock.Anything, hostID, bookingID).Return(nil, domain.ErrBookingNotPending)

	w := d.do(t, http.MethodPost, "/api/bookings/"+bookingID+"/confirm/", "", hostID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		booking *domain.Booking
		err     error
		status  int
	}{
		{"guest cancels", guestID, decemberBooking(domain.BookingStatusCancelled), nil, http.StatusOK},
		{"host cancels", hostID, decemberBooking(domain.BookingStatusCancelled), nil, http.StatusOK},
		{"stranger", otherID, nil, domain.ErrPermissionDenied, http.StatusForbidden},
		{"re-cancel", guestID, nil, domain.ErrBookingAlreadyCancelled, http.StatusConflict},
		{"raced", guestID, nil, domain.ErrBookingStatusChanged, http.StatusConflict},
		{"missing", guestID, nil, domain.ErrBookingNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.bookings.EXPECT().Cancel(mock.Anything, tt.caller, bookingID).Return(tt.booking, tt.err)

			w := d.do(t, http.MethodPost, "/api/bookings/"+bookingID+"/cancel/", "", tt.caller)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "cancelled", decode[dto.BookingActionResponse](t, w).Booking.Status)
			}
		})
	}
}

func TestHandler_ListBookings_HostAndFilters(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
			return f.CallerID == hostID && f.Status == domain.BookingStatusPending &&
				f.ListingID == listingID && f.Ordering == "check_in_date"
		})).
		Return(&domain.Page[*domain.Booking]{Items: []*domain.Booking{decemberBooking(domain.BookingStatusPending)}, Total: 1}, nil)

	w := d.do(t, http.MethodGet, "/api/bookings/?status=pending&listing="+listingID+"&ordering=check_in_date", "", hostID)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PageResponse[dto.BookingResponse]](t, w)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, guestID, resp.Results[0].GuestID)
}

func TestHandler_GetBooking_HostIsForbidden(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Get(mock.Anything, hostID, bookingID).Return(nil, domain.ErrPermissionDenied)

	w := d.do(t, http.MethodGet, "/api/bookings/"+bookingID+"/", "", hostID)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_MalformedID(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodGet, "/api/bookings/42/", "", guestID)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrBookingNotFound.Error(), decode[dto.ErrorResponse](t, w).Error)
}

func TestHandler_PatchBooking(t *testing.T) {
	d := setupRouter(t)

	updated := decemberBooking(domain.BookingStatusPending)
	updated.NumberOfGuests = 2
	d.bookings.EXPECT().
		Update(mock.Anything, guestID, bookingID, mock.MatchedBy(func(p domain.BookingPatch) bool {
			return *p.NumberOfGuests == 2 && p.CheckInDate == nil
		}), true).
		Return(updated, nil)

	w := d.do(t, http.MethodPatch, "/api/bookings/"+bookingID+"/", `{"number_of_guests":2}`, guestID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[dto.BookingResponse](t, w).NumberOfGuests)
}

func TestHandler_UpdateBooking_NotPending(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Update(mock.Anything, guestID, bookingID, mock.Anything, false).
		Return(nil, domain.ErrBookingNotPending)

	w := d.do(t, http.MethodPut, "/api/bookings/"+bookingID+"/",
		`{"check_in_date":"2024-12-01","check_out_date":"2024-12-03","number_of_guests":1}`, guestID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBooking_MalformedBody(t *testing.T) {
	tests := []struct {
		name   string
		caller string
		body   string
		getErr error
		want   int
	}{
		{"host is refused", hostID, `{"number_of_guests":`, domain.ErrPermissionDenied, http.StatusForbidden},
		{"host is refused on a bad date", hostID, `{"check_in_date":"soon"}`, domain.ErrPermissionDenied, http.StatusForbidden},
		{"guest sees the body error", guestID, `{"number_of_guests":`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)

			var booking *domain.Booking
			if tt.getErr == nil {
				booking = decemberBooking(domain.BookingStatusPending)
			}
			d.bookings.EXPECT().Get(mock.Anything, tt.caller, bookingID).Return(booking, tt.getErr)

			w := d.do(t, http.MethodPut, "/api/bookings/"+bookingID+"/", tt.body, tt.caller)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Delete(mock.Anything, guestID, bookingID).Return(nil)

	w := d.do(t, http.MethodDelete, "/api/bookings/"+bookingID+"/", "", guestID)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandler_MyBookings(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().MyBookings(mock.Anything, guestID, domain.PageRequest{Page: 1, Size: domain.DefaultPageSize}).
		Return(&domain.Page[*domain.Booking]{Items: []*domain.Booking{decemberBooking(domain.BookingStatusPending)}, Total: 1}, nil)

	w := d.do(t, http.MethodGet, "/api/bookings/my_bookings/", "", guestID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[dto.PageResponse[dto.BookingResponse]](t, w).Count)
}

func TestHandler_ReviewBooking(t *testing.T) {
	tests := []struct {
		name   string
		review *domain.Review
		err    error
		status int
	}{
		{"created", &domain.Review{ID: "r1", BookingID: bookingID, GuestID: guestID, Rating: 4}, nil, http.StatusCreated},
		{"duplicate", nil, domain.ErrAlreadyReviewed, http.StatusConflict},
		{"not confirmed", nil, domain.NewFieldError("booking", "only confirmed bookings can be reviewed"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupRouter(t)
			d.reviews.EXPECT().
				Create(mock.Anything, guestID, bookingID, domain.CreateReviewInput{Rating: 4, Comment: "Lovely"}).
				Return(tt.review, tt.err)

			w := d.do(t, http.MethodPost, "/api/bookings/"+bookingID+"/review/", `{"rating":4,"comment":"Lovely"}`, guestID)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_InternalErrorHidesDetail(t *testing.T) {
	d := setupRouter(t)

	d.bookings.EXPECT().Get(mock.Anything, guestID, bookingID).Return(nil, errors.New("pq: connection refused"))

	w := d.do(t, http.MethodGet, "/api/bookings/"+bookingID+"/", "", guestID)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

// --- Accounts ---

func TestHandler_Register(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().
		Register(mock.Anything, domain.RegisterInput{Username: "alice", Password: "s3cretpass"}).
		Return(&domain.User{ID: hostID, Username: "alice", CreatedAt: time.Now()}, nil)

	w := d.do(t, http.MethodPost, "/api/auth/register/", `{"username":"alice","password":"s3cretpass"}`, "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice", decode[dto.UserResponse](t, w).Username)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := d.do(t, http.MethodPost, "/api/auth/register/", `{"username":"alice","password":"s3cretpass"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_SetsCookie(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Login(mock.Anything, domain.LoginInput{Username: "alice", Password: "s3cretpass"}).
		Return(&domain.Session{
			User:      &domain.User{ID: hostID, Username: "alice"},
			Token:     "jwt-token",
			SessionID: "sid-1",
		}, nil)

	w := d.do(t, http.MethodPost, "/api/auth/login/", `{"username":"alice","password":"s3cretpass"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.LoginResponse](t, w)
	assert.Equal(t, "jwt-token", resp.Token)

	cookie := w.Result().Cookies()
	require.Len(t, cookie, 1)
	assert.Equal(t, "session_id", cookie[0].Name)
	assert.Equal(t, "sid-1", cookie[0].Value)
	assert.True(t, cookie[0].HttpOnly)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w := d.do(t, http.MethodPost, "/api/auth/login/", `{"username":"alice","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Me(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().GetByID(mock.Anything, guestID).Return(&domain.User{ID: guestID, Username: "bob"}, nil)

	w := d.do(t, http.MethodGet, "/api/auth/me/", "", guestID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, guestID, decode[dto.UserResponse](t, w).ID)

	assert.Equal(t, http.StatusUnauthorized, d.do(t, http.MethodGet, "/api/auth/me/", "", "").Code)
}

func TestHandler_Logout(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Logout(mock.Anything, "").Return(nil)

	w := d.do(t, http.MethodPost, "/api/auth/logout/", "", guestID)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Health(t *testing.T) {
	d := setupRouter(t)

	w := d.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
