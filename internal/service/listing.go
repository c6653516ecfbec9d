package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/authz"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/service/ports"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/validation"
	"github.com/wb-go/wbf/logger"
)

const msgRequired = "this field is required"

// maxPrice is the exclusive upper bound of a decimal(10,2) column.
var maxPrice = decimal.New(1, 8)

type ListingService struct {
	repo   ports.ListingRepo
	logger logger.Logger
}

func NewListingService(repo ports.ListingRepo, logger logger.Logger) *ListingService {
	return &ListingService{repo: repo, logger: logger}
}

func (s *ListingService) Create(ctx context.Context, callerID string, p domain.ListingPatch) (*domain.Listing, error) {
	if err := authz.Check(callerID, authz.Listing, authz.Create, authz.Target{}); err != nil {
		return nil, err
	}

	fields := domain.FieldErrors{}
	for _, f := range p.Missing() {
		fields.Add(f, msgRequired)
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	listing := domain.NewListing()
	listing.Apply(p)
	listing.ID = uuid.New().String()
	listing.HostID = callerID
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := validateListing(listing); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing created",
		logger.String("listing_id", listing.ID),
		logger.String("host_id", callerID),
	)

	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.ListingDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *ListingService) List(ctx context.Context, f domain.ListingFilter) (*domain.Page[*domain.Listing], error) {
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, domain.NewFieldError("min_price", "must not be greater than max_price")
	}

	page, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	if err = f.Page.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}

// Update applies p to the listing. A full update (partial == false) must
// carry every required field.
func (s *ListingService) Update(ctx context.Context, callerID, id string, p domain.ListingPatch, partial bool) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	op := authz.Update
	if partial {
		op = authz.PartialUpdate
	}
	if err = authz.Check(callerID, authz.Listing, op, authz.Target{HostID: listing.HostID}); err != nil {
		return nil, err
	}

	if !partial {
		fields := domain.FieldErrors{}
		for _, f := range p.Missing() {
			fields.Add(f, msgRequired)
		}
		if err = fields.Err(); err != nil {
			return nil, err
		}
	}

	listing.Apply(p)
	listing.UpdatedAt = time.Now().UTC()
	if err = validateListing(listing); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing updated",
		logger.String("listing_id", listing.ID),
	)

	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, callerID, id string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}

	if err = authz.Check(callerID, authz.Listing, authz.Delete, authz.Target{HostID: listing.HostID}); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "listing deleted",
		logger.String("listing_id", id),
	)

	return nil
}

func (s *ListingService) Available(ctx context.Context, q domain.AvailabilityQuery) (*domain.Page[*domain.Listing], error) {
	if !q.CheckOut.After(q.CheckIn) {
		return nil, domain.NewFieldError("check_out", "must be after check_in")
	}

	page, err := s.repo.ListAvailable(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list available listings: %w", err)
	}
	if err = q.Page.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}

// ByLocation matches location as a case-insensitive substring.
func (s *ListingService) ByLocation(ctx context.Context, location string, req domain.PageRequest) (*domain.Page[*domain.Listing], error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domain.NewFieldError("location", msgRequired)
	}

	page, err := s.repo.ListByLocation(ctx, location, req)
	if err != nil {
		return nil, fmt.Errorf("list listings by location: %w", err)
	}
	if err = req.Validate(page.Total); err != nil {
		return nil, err
	}
	return page, nil
}

func validateListing(l *domain.Listing) error {
	fields := validation.Struct(l)
	switch {
	case l.PricePerNight.IsNegative():
		fields.Add("price_per_night", "ensure this value is greater than or equal to 0")
	case l.PricePerNight.Exponent() < -2 && !l.PricePerNight.Equal(l.PricePerNight.Round(2)):
		fields.Add("price_per_night", "ensure that there are no more than 2 decimal places")
	case l.PricePerNight.GreaterThanOrEqual(maxPrice):
		fields.Add("price_per_night", "ensure that there are no more than 10 digits in total")
	}
	return fields.Err()
}
