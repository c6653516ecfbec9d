package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (id, booking_id, guest_id, rating, comment, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rev.ID, rev.BookingID, rev.GuestID, rev.Rating, rev.Comment, rev.CreatedAt,
	)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrAlreadyReviewed
		case codeForeignKeyViolation:
			return domain.ErrBookingNotFound
		case codeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, err)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string, p domain.PageRequest) (*domain.Page[*domain.Review], error) {
	var c conditions
	c.add("b.listing_id = $%d", listingID)
	query := `SELECT r.id, r.booking_id, r.guest_id, r.rating, r.comment, r.created_at, COUNT(*) OVER()
              FROM reviews r JOIN bookings b ON b.id = r.booking_id` +
		c.where() +
		` ORDER BY r.created_at DESC, r.id` +
		c.page(p)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	res := &domain.Page[*domain.Review]{Items: []*domain.Review{}}
	for rows.Next() {
		var rev domain.Review
		if err = rows.Scan(
			&rev.ID, &rev.BookingID, &rev.GuestID,
			&rev.Rating, &rev.Comment, &rev.CreatedAt, &res.Total,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res.Items = append(res.Items, &rev)
	}

	return res, rows.Err()
}
