package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

const DateFormatMessage = "date has wrong format, use YYYY-MM-DD"

// Pointer fields distinguish "not sent" from a zero value so PATCH can
// apply a subset and PUT can report what is missing.
type ListingRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	PropertyType  *string          `json:"property_type"`
	PricePerNight *decimal.Decimal `json:"price_per_night" swaggertype:"string" example:"120.00"`
	MaxGuests     *int             `json:"max_guests"`
	Bedrooms      *int             `json:"bedrooms"`
	Bathrooms     *int             `json:"bathrooms"`
	Amenities     *[]string        `json:"amenities"`
	Available     *bool            `json:"available"`
}

func (r ListingRequest) ToPatch() domain.ListingPatch {
	p := domain.ListingPatch{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		MaxGuests:     r.MaxGuests,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Amenities:     r.Amenities,
		Available:     r.Available,
	}
	if r.PropertyType != nil {
		pt := domain.PropertyType(*r.PropertyType)
		p.PropertyType = &pt
	}
	return p
}

type BookingRequest struct {
	ListingID       *string `json:"listing_id"`
	CheckInDate     *string `json:"check_in_date"  example:"2024-07-01"`
	CheckOutDate    *string `json:"check_out_date" example:"2024-07-05"`
	NumberOfGuests  *int    `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
}

// ToPatch parses the dates. Unparsable dates are reported per field.
func (r BookingRequest) ToPatch() (domain.BookingPatch, error) {
	fields := domain.FieldErrors{}
	p := domain.BookingPatch{
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}

	p.CheckInDate = parseDate(fields, "check_in_date", r.CheckInDate)
	p.CheckOutDate = parseDate(fields, "check_out_date", r.CheckOutDate)

	return p, fields.Err()
}

func (r BookingRequest) ToCreateInput() (domain.CreateBookingInput, error) {
	p, err := r.ToPatch()
	if err != nil {
		return domain.CreateBookingInput{}, err
	}

	in := domain.CreateBookingInput{BookingPatch: p}
	if r.ListingID != nil {
		in.ListingID = *r.ListingID
	}
	return in, nil
}

func parseDate(fields domain.FieldErrors, name string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := ParseDate(*raw)
	if err != nil {
		fields.Add(name, DateFormatMessage)
		return nil
	}
	return &t
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

type ReviewRequest struct {
	Rating  int    `json:"rating"  example:"5"`
	Comment string `json:"comment"`
}

type RegisterRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
