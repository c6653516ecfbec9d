package dto

import (
	"time"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type ListingResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PropertyType  string   `json:"property_type"`
	PricePerNight string   `json:"price_per_night" example:"120.00"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	Available     bool     `json:"available"`
	HostID        string   `json:"host_id"`
	AverageRating *float64 `json:"average_rating"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type ListingDetailsResponse struct {
	ListingResponse
	RecentBookingsCount int `json:"recent_bookings_count"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	ListingID       string `json:"listing_id"`
	GuestID         string `json:"guest_id"`
	HostID          string `json:"host_id"`
	CheckInDate     string `json:"check_in_date"  example:"2024-07-01"`
	CheckOutDate    string `json:"check_out_date" example:"2024-07-05"`
	Nights          int    `json:"nights"`
	NumberOfGuests  int    `json:"number_of_guests"`
	TotalPrice      string `json:"total_price"    example:"480.00"`
	Status          string `json:"status"`
	SpecialRequests string `json:"special_requests"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type BookingActionResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	GuestID   string `json:"guest_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PropertyType:  string(l.PropertyType),
		PricePerNight: l.PricePerNight.StringFixed(2),
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Amenities:     amenities,
		Available:     l.Available,
		HostID:        l.HostID,
		AverageRating: l.AverageRating,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     l.UpdatedAt.Format(time.RFC3339),
	}
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	return ListingDetailsResponse{
		ListingResponse:     ToListingResponse(&d.Listing),
		RecentBookingsCount: d.RecentBookingsCount,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestID:         b.GuestID,
		HostID:          b.HostID,
		CheckInDate:     b.CheckInDate.Format(time.DateOnly),
		CheckOutDate:    b.CheckOutDate.Format(time.DateOnly),
		Nights:          b.Nights(),
		NumberOfGuests:  b.NumberOfGuests,
		TotalPrice:      b.TotalPrice.StringFixed(2),
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		BookingID: r.BookingID,
		GuestID:   r.GuestID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
