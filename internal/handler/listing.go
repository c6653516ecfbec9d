package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/handler/dto"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// ListListings godoc
// @Summary  List listings
// @Tags     listings
// @Produce  json
// @Param    location         query  string  false  "exact location"
// @Param    property_type    query  string  false  "property type"
// @Param    price_per_night  query  string  false  "exact nightly price"
// @Param    min_price        query  string  false  "lowest nightly price"
// @Param    max_price        query  string  false  "highest nightly price"
// @Param    search           query  string  false  "substring of title, description or location"
// @Param    ordering         query  string  false  "created_at, price_per_night or rating, '-' for descending"
// @Param    page             query  int     false  "page number"
// @Param    page_size        query  int     false  "page size"
// @Success  200  {object}  dto.PageResponse[dto.ListingResponse]
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /listings/ [get]
func (h *Handler) ListListings(c *ginext.Context) {
	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fields := domain.FieldErrors{}
	f := domain.ListingFilter{
		Location:      c.Query("location"),
		PropertyType:  c.Query("property_type"),
		PricePerNight: decimalQuery(c, fields, "price_per_night"),
		MinPrice:      decimalQuery(c, fields, "min_price"),
		MaxPrice:      decimalQuery(c, fields, "max_price"),
		Search:        c.Query("search"),
		Ordering:      c.Query("ordering"),
		Page:          page,
	}
	if err = fields.Err(); err != nil {
		h.handleError(c, err)
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, listings, page, dto.ToListingResponse)
}

func decimalQuery(c *ginext.Context, fields domain.FieldErrors, name string) *decimal.Decimal {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fields.Add(name, "enter a number")
		return nil
	}
	return &d
}

func dateQuery(c *ginext.Context, fields domain.FieldErrors, name string) time.Time {
	raw := c.Query(name)
	if raw == "" {
		fields.Add(name, "this parameter is required")
		return time.Time{}
	}
	t, err := dto.ParseDate(raw)
	if err != nil {
		fields.Add(name, dto.DateFormatMessage)
	}
	return t
}

// CreateListing godoc
// @Summary   Create a listing hosted by the caller
// @Tags      listings
// @Accept    json
// @Produce   json
// @Param     payload  body  dto.ListingRequest  true  "listing"
// @Success   201  {object}  dto.ListingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   401  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /listings/ [post]
func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.ListingRequest
	if err := bindJSON(c, &req); err != nil {
		h.handleError(c, err)
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), middleware.CallerID(c), req.ToPatch())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

// GetListing godoc
// @Summary  Retrieve a listing
// @Tags     listings
// @Produce  json
// @Param    id   path  string  true  "listing id"
// @Success  200  {object}  dto.ListingDetailsResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /listings/{id}/ [get]
func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrListingNotFound)
	if !ok {
		return
	}

	details, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

// UpdateListing godoc
// @Summary   Replace a listing
// @Tags      listings
// @Accept    json
// @Produce   json
// @Param     id       path  string              true  "listing id"
// @Param     payload  body  dto.ListingRequest  true  "listing"
// @Success   200  {object}  dto.ListingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /listings/{id}/ [put]
func (h *Handler) UpdateListing(c *ginext.Context) {
	h.updateListing(c, false)
}

// PatchListing godoc
// @Summary   Update some fields of a listing
// @Tags      listings
// @Accept    json
// @Produce   json
// @Param     id       path  string              true  "listing id"
// @Param     payload  body  dto.ListingRequest  true  "fields to change"
// @Success   200  {object}  dto.ListingResponse
// @Failure   400  {object}  dto.ErrorResponse
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /listings/{id}/ [patch]
func (h *Handler) PatchListing(c *ginext.Context) {
	h.updateListing(c, true)
}

func (h *Handler) updateListing(c *ginext.Context, partial bool) {
	id, ok := pathID(c, domain.ErrListingNotFound)
	if !ok {
		return
	}

	var req dto.ListingRequest
	if err := bindJSON(c, &req); err != nil {
		if denied := h.listingWriteDenied(c, id, partial); denied != nil {
			err = denied
		}
		h.handleError(c, err)
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), middleware.CallerID(c), id, req.ToPatch(), partial)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// listingWriteDenied reports why the caller may not update listing id, so
// that a stranger sending a malformed body is refused rather than corrected.
func (h *Handler) listingWriteDenied(c *ginext.Context, id string, partial bool) error {
	details, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}

	op := authz.Update
	if partial {
		op = authz.PartialUpdate
	}
	return authz.Check(middleware.CallerID(c), authz.Listing, op, authz.Target{HostID: details.Listing.HostID})
}

// DeleteListing godoc
// @Summary   Delete a listing without active bookings
// @Tags      listings
// @Param     id  path  string  true  "listing id"
// @Success   204
// @Failure   403  {object}  dto.ErrorResponse
// @Failure   404  {object}  dto.ErrorResponse
// @Failure   409  {object}  dto.ErrorResponse
// @Security  BearerAuth
// @Router    /listings/{id}/ [delete]
func (h *Handler) DeleteListing(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrListingNotFound)
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), middleware.CallerID(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AvailableListings godoc
// @Summary  Listings free for the whole stay
// @Tags     listings
// @Produce  json
// @Param    check_in   query  string  true   "YYYY-MM-DD"
// @Param    check_out  query  string  true   "YYYY-MM-DD"
// @Param    page       query  int     false  "page number"
// @Param    page_size  query  int     false  "page size"
// @Success  200  {object}  dto.PageResponse[dto.ListingResponse]
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /listings/available/ [get]
func (h *Handler) AvailableListings(c *ginext.Context) {
	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fields := domain.FieldErrors{}
	q := domain.AvailabilityQuery{
		CheckIn:  dateQuery(c, fields, "check_in"),
		CheckOut: dateQuery(c, fields, "check_out"),
		Page:     page,
	}
	if err = fields.Err(); err != nil {
		h.handleError(c, err)
		return
	}

	listings, err := h.listingService.Available(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, listings, page, dto.ToListingResponse)
}

// ListingsByLocation godoc
// @Summary  Listings whose location contains the given text
// @Tags     listings
// @Produce  json
// @Param    location   query  string  true   "case-insensitive substring"
// @Param    page       query  int     false  "page number"
// @Param    page_size  query  int     false  "page size"
// @Success  200  {object}  dto.PageResponse[dto.ListingResponse]
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /listings/by_location/ [get]
func (h *Handler) ListingsByLocation(c *ginext.Context) {
	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	listings, err := h.listingService.ByLocation(c.Request.Context(), c.Query("location"), page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, listings, page, dto.ToListingResponse)
}

// ListingReviews godoc
// @Summary  Reviews left on a listing
// @Tags     listings
// @Produce  json
// @Param    id         path   string  true   "listing id"
// @Param    page       query  int     false  "page number"
// @Param    page_size  query  int     false  "page size"
// @Success  200  {object}  dto.PageResponse[dto.ReviewResponse]
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /listings/{id}/reviews/ [get]
func (h *Handler) ListingReviews(c *ginext.Context) {
	id, ok := pathID(c, domain.ErrListingNotFound)
	if !ok {
		return
	}

	page, err := h.pageRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), id, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writePage(c, reviews, page, dto.ToReviewResponse)
}
