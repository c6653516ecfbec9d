package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyCondo     PropertyType = "condo"
	PropertyVilla     PropertyType = "villa"
	PropertyCabin     PropertyType = "cabin"
	PropertyLoft      PropertyType = "loft"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyOther     PropertyType = "other"
)

type Listing struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"          validate:"required,max=200"`
	Description   string          `json:"description"    validate:"required"`
	Location      string          `json:"location"       validate:"required,max=200"`
	PropertyType  PropertyType    `json:"property_type"  validate:"required,oneof=apartment house condo villa cabin loft townhouse other"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxGuests     int             `json:"max_guests"     validate:"gte=1"`
	Bedrooms      int             `json:"bedrooms"       validate:"gte=0"`
	Bathrooms     int             `json:"bathrooms"      validate:"gte=0"`
	Amenities     []string        `json:"amenities"      validate:"max=50,dive,required,max=100"`
	Available     bool            `json:"available"`
	HostID        string          `json:"host_id"`
	AverageRating *float64        `json:"average_rating"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ListingDetails struct {
	Listing             Listing `json:"listing"`
	RecentBookingsCount int     `json:"recent_bookings_count"`
}

// ListingPatch carries the writable listing fields. Nil means "not sent".
type ListingPatch struct {
	Title         *string
	Description   *string
	Location      *string
	PropertyType  *PropertyType
	PricePerNight *decimal.Decimal
	MaxGuests     *int
	Bedrooms      *int
	Bathrooms     *int
	Amenities     *[]string
	Available     *bool
}

// Missing lists the fields a full write (create or PUT) must carry.
func (p ListingPatch) Missing() []string {
	var missing []string
	if p.Title == nil {
		missing = append(missing, "title")
	}
	if p.Description == nil {
		missing = append(missing, "description")
	}
	if p.Location == nil {
		missing = append(missing, "location")
	}
	if p.PricePerNight == nil {
		missing = append(missing, "price_per_night")
	}
	if p.MaxGuests == nil {
		missing = append(missing, "max_guests")
	}
	return missing
}

// NewListing returns a listing with the defaults applied to fields a client may omit.
func NewListing() *Listing {
	return &Listing{
		PropertyType: PropertyApartment,
		Bedrooms:     1,
		Bathrooms:    1,
		Amenities:    []string{},
		Available:    true,
	}
}

func (l *Listing) Apply(p ListingPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.PropertyType != nil {
		l.PropertyType = *p.PropertyType
	}
	if p.PricePerNight != nil {
		l.PricePerNight = *p.PricePerNight
	}
	if p.MaxGuests != nil {
		l.MaxGuests = *p.MaxGuests
	}
	if p.Bedrooms != nil {
		l.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		l.Bathrooms = *p.Bathrooms
	}
	if p.Amenities != nil {
		l.Amenities = *p.Amenities
	}
	if p.Available != nil {
		l.Available = *p.Available
	}
}

var ListingOrderings = []string{"created_at", "price_per_night", "rating"}

type ListingFilter struct {
	Location      string
	PropertyType  string
	PricePerNight *decimal.Decimal
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Search        string
	Ordering      string
	Page          PageRequest
}

// AvailabilityQuery asks for listings free on [CheckIn, CheckOut).
type AvailabilityQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Page     PageRequest
}
