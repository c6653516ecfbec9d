package ports

import (
	"context"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error)
	List(ctx context.Context, f domain.ListingFilter) (*domain.Page[*domain.Listing], error)
	ListAvailable(ctx context.Context, q domain.AvailabilityQuery) (*domain.Page[*domain.Listing], error)
	ListByLocation(ctx context.Context, location string, page domain.PageRequest) (*domain.Page[*domain.Listing], error)
	Update(ctx context.Context, l *domain.Listing) error
	Delete(ctx context.Context, id string) error
}
