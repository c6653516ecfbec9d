package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses hold dates on a listing.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
}

// CanTransition reports whether s may move to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	return slices.Contains(transitions[s], next)
}

// Sources returns every status that may move to next.
func Sources(next BookingStatus) []BookingStatus {
	var res []BookingStatus
	for from, to := range transitions {
		if slices.Contains(to, next) {
			res = append(res, from)
		}
	}
	slices.Sort(res)
	return res
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a stay request. HostID is read from the listing and never
// stored on the booking row.
type Booking struct {
	ID              string          `json:"id"`
	ListingID       string          `json:"listing_id"`
	GuestID         string          `json:"guest_id"`
	HostID          string          `json:"host_id"`
	CheckInDate     time.Time       `json:"check_in_date"     validate:"required"`
	CheckOutDate    time.Time       `json:"check_out_date"    validate:"required,gtfield=CheckInDate"`
	NumberOfGuests  int             `json:"number_of_guests"  validate:"gte=1"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          BookingStatus   `json:"status"`
	SpecialRequests string          `json:"special_requests"  validate:"max=1000"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Nights is the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Price recomputes the total for the given nightly rate.
func (b *Booking) Price(perNight decimal.Decimal) decimal.Decimal {
	return perNight.Mul(decimal.NewFromInt(int64(b.Nights())))
}

// Overlaps reports whether b and [checkIn, checkOut) intersect.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

type BookingPatch struct {
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int
	SpecialRequests *string
}

// Missing lists the fields a full write must carry.
func (p BookingPatch) Missing() []string {
	var missing []string
	if p.CheckInDate == nil {
		missing = append(missing, "check_in_date")
	}
	if p.CheckOutDate == nil {
		missing = append(missing, "check_out_date")
	}
	if p.NumberOfGuests == nil {
		missing = append(missing, "number_of_guests")
	}
	return missing
}

func (b *Booking) Apply(p BookingPatch) {
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.NumberOfGuests != nil {
		b.NumberOfGuests = *p.NumberOfGuests
	}
	if p.SpecialRequests != nil {
		b.SpecialRequests = *p.SpecialRequests
	}
}

type CreateBookingInput struct {
	ListingID string
	BookingPatch
}

var BookingOrderings = []string{"created_at", "check_in_date", "total_price"}

type BookingFilter struct {
	// CallerID sees bookings they made and bookings on listings they host.
	CallerID  string
	Status    BookingStatus
	ListingID string
	Ordering  string
	Page      PageRequest
}
