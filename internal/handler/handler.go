package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	Create(ctx context.Context, callerID string, p domain.ListingPatch) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.ListingDetails, error)
	List(ctx context.Context, f domain.ListingFilter) (*domain.Page[*domain.Listing], error)
	Update(ctx context.Context, callerID, id string, p domain.ListingPatch, partial bool) (*domain.Listing, error)
	Delete(ctx context.Context, callerID, id string) error
	Available(ctx context.Context, q domain.AvailabilityQuery) (*domain.Page[*domain.Listing], error)
	ByLocation(ctx context.Context, location string, req domain.PageRequest) (*domain.Page[*domain.Listing], error)
}

type BookingSvc interface {
	Create(ctx context.Context, callerID string, in domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, callerID, id string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) (*domain.Page[*domain.Booking], error)
	MyBookings(ctx context.Context, callerID string, req domain.PageRequest) (*domain.Page[*domain.Booking], error)
	Update(ctx context.Context, callerID, id string, p domain.BookingPatch, partial bool) (*domain.Booking, error)
	Delete(ctx context.Context, callerID, id string) error
	Cancel(ctx context.Context, callerID, id string) (*domain.Booking, error)
	Confirm(ctx context.Context, callerID, id string) (*domain.Booking, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, callerID, bookingID string, in domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string, req domain.PageRequest) (*domain.Page[*domain.Review], error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Options holds the transport settings of the handlers.
type Options struct {
	CookieName   string
	CookieTTL    time.Duration
	CookieSecure bool
	MaxPageSize  int
}

type Handler struct {
	listingService ListingSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	userService    UserSvc
	opts           Options
}

func NewHandler(
	listingService ListingSvc,
	bookingService BookingSvc,
	reviewService ReviewSvc,
	userService UserSvc,
	opts Options,
) *Handler {
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 100
	}
	if opts.CookieName == "" {
		opts.CookieName = "session_id"
	}

	return &Handler{
		listingService: listingService,
		bookingService: bookingService,
		reviewService:  reviewService,
		userService:    userService,
		opts:           opts,
	}
}

// bindJSON decodes the request body into dst. An empty body leaves dst
// untouched so the service can report the missing fields.
func bindJSON(c *ginext.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewFieldError(typeErr.Field, fmt.Sprintf("incorrect type, expected %s", typeErr.Type))
	}

	return fmt.Errorf("%w: malformed request body: %s", domain.ErrValidation, err)
}

// pathID returns the :id parameter. A value that is not a UUID cannot
// name a record, so it is answered with notFound.
func pathID(c *ginext.Context, notFound error) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound.Error()})
		return "", false
	}
	return id, true
}

func (h *Handler) pageRequest(c *ginext.Context) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: 1, Size: domain.DefaultPageSize}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return req, domain.ErrInvalidPage
		}
		req.Page = page
	}

	if raw := c.Query("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			req.Size = min(size, h.opts.MaxPageSize)
		}
	}

	return req, nil
}

// requestURL rebuilds the absolute URL of the current request for
// pagination links.
func requestURL(c *ginext.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}

func writePage[D, T any](c *ginext.Context, p *domain.Page[D], req domain.PageRequest, conv func(D) T) {
	c.JSON(http.StatusOK, dto.ToPageResponse(p, req, requestURL(c), conv))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrValidation.Error(), FieldErrors: verr.Fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", `Bearer realm="api"`)
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidPage):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrBookingAlreadyCancelled),
		errors.Is(err, domain.ErrListingHasActiveBookings),
		errors.Is(err, domain.ErrBookingStatusChanged),
		errors.Is(err, domain.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
