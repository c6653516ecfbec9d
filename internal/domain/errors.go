package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPage     = errors.New("invalid page")
)

var (
	ErrDatesUnavailable         = errors.New("these dates are not available, please choose different dates")
	ErrBookingAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrBookingStatusChanged     = errors.New("booking status was changed by another request")
	ErrListingHasActiveBookings = errors.New("listing has pending or confirmed bookings")
	ErrAlreadyReviewed          = errors.New("booking has already been reviewed")
)

var (
	ErrUnauthenticated    = errors.New("authentication credentials were not provided")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPermissionDenied   = errors.New("you do not have permission to perform this action")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrBookingNotPending = errors.New("only pending bookings can be changed")
	ErrUsernameTaken     = errors.New("username is already taken")
)
