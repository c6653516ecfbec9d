package ports

import (
	"context"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByListing(ctx context.Context, listingID string, page domain.PageRequest) (*domain.Page[*domain.Review], error)
}
