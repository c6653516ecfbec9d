package handler

import (
	"net/http"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler/dto"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// ListBookings godoc
// @Summary   Bookings made by the caller or placed on the caller's listings
// @Tags      bookings
// @Produce   json
// @Param     status     query  string  false  "pending, confirmed or cancelled"
// @Param     listing    query  string  false  "listing id"
// @Param     ordering   query  string  false  "created_at, check_in_date or total_price, '-' for descending"
// @Param     page       query  int     false  "page number"
// @Param     page_size  query  int     false  "page size"
// @Success   200  {object}  dto.PageResponse[dto.BookingResponse]
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   401  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/ [get]
func (h *Handler) ListBookings(c *ginext.Context) {
	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), domain.BookingFilter{
		CallerID:  middleware.CallerID(c),
		Status:    domain.BookingStatus(c.Query("status")),
		ListingID: c.Query("listing"),
		Ordering:  c.Query("ordering"),
		Page:      page,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, bookings, page, dto.ToBookingResponse)
}

// CreateBooking godoc
// @Summary   Request a stay
// @Tags      bookings
// @Accept    json
// @Produce   json
// @Param     payload  body  dto.BookingRequest  true  "booking"
// @Success   201  {object}  dto.BookingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   401  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse  "dates overlap an active booking"
// @Security  BearerAuth
// @Router    /bookings/ [post]
func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.BookingRequest
	if err := bindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	in, err := req.ToCreateInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), middleware.CallerID(c), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// GetBooking godoc
// @Summary   Retrieve one of the caller's bookings
// @Tags      bookings
// @Produce   json
// @Param     id  path  string  true  "booking id"
// @Success   200  {object}  dto.BookingResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/{id}/ [get]
func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), middleware.CallerID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// UpdateBooking godoc
// @Summary   Replace a pending booking
// @Tags      bookings
// @Accept    json
// @Produce   json
// @Param     id       path  string              true  "booking id"
// @Param     payload  body  dto.BookingRequest  true  "booking"
// @Success   200  {object}  dto.BookingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/{id}/ [put]
func (h *Handler) UpdateBooking(c *ginext.Context) {
	h.updateBooking(c, false)
}

// PatchBooking godoc
// @Summary   Update some fields of a pending booking
// @Tags      bookings
// @Accept    json
// @Produce   json
// @Param     id       path  string              true  "booking id"
// @Param     payload  body  dto.BookingRequest  true  "fields to change"
// @Success   200  {object}  dto.BookingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/{id}/ [patch]
func (h *Handler) PatchBooking(c *ginext.Context) {
	h.updateBooking(c, true)
}

func (h *Handler) updateBooking(c *ginext.Context, partial bool) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	var req dto.BookingRequest
	err := bindJSON(c, &req)
	var patch domain.BookingPatch
	if err == nil {
		patch, err = req.ToPatch()
	}
	if err != nil {
		// Get applies the same guest-only rule as Update.
		if _, denied := h.bookingService.Get(c.Request.Context(), middleware.CallerID(c), id); denied != nil {
			err = denied
		}
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), middleware.CallerID(c), id, patch, partial)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// DeleteBooking godoc
// @Summary   Delete a pending booking
// @Tags      bookings
// @Param     id  path  string  true  "booking id"
// @Success   204
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/{id}/ [delete]
func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), middleware.CallerID(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelBooking godoc
// @Summary   Cancel a booking as its guest or host
// @Tags      bookings
// @Produce   json
// @Param     id  path  string  true  "booking id"
// @Success   200  {object}  dto.BookingActionResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse  "already cancelled"
// @Security  BearerAuth
// @Router    /bookings/{id}/cancel/ [post]
func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), middleware.CallerID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingActionResponse{
		Message: "Booking cancelled successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

// ConfirmBooking godoc
// @Summary   Confirm a pending booking on the caller's listing
// @Tags      bookings
// @Produce   json
// @Param     id  path  string  true  "booking id"
// @Success   200  {object}  dto.BookingActionResponse
// @Failure   400  {object}  dto.ErrorResponse  "booking is not pending"
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/{id}/confirm/ [post]
func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), middleware.CallerID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingActionResponse{
		Message: "Booking confirmed successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

// MyBookings godoc
// @Summary   Bookings the caller made, soonest stay first
// @Tags      bookings
// @Produce   json
// @Param     page       query  int  false  "page number"
// @Param     page_size  query  int  false  "page size"
// @Success   200  {object}  dto.PageResponse[dto.BookingResponse]
// @Failure   401  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /bookings/my_bookings/ [get]
func (h *Handler) MyBookings(c *ginext.Context) {
	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	bookings, err := h.bookingService.MyBookings(c.Request.Context(), middleware.CallerID(c), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, bookings, page, dto.ToBookingResponse)
}

// ReviewBooking godoc
// @Summary   Review a confirmed stay
// @Tags      bookings
// @Accept    json
// @Produce   json
// @Param     id       path  string             true  "booking id"
// @Param     payload  body  dto.ReviewRequest  true  "review"
// @Success   201  {object}  dto.ReviewResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse  "already reviewed"
// @Security  BearerAuth
// @Router    /bookings/{id}/review/ [post]
func (h *Handler) ReviewBooking(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrBookingNotFound)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), middleware.CallerID(c), id, domain.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}
