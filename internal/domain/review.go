package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	GuestID   string    `json:"guest_id"`
	Rating    int       `json:"rating"  validate:"gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"max=2000"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}
