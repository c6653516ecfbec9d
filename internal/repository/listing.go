package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const listingColumns = `l.id, l.title, l.description, l.location, l.property_type,
       l.price_per_night, l.max_guests, l.bedrooms, l.bathrooms, l.amenities,
       l.available, l.host_id, l.created_at, l.updated_at,
       (SELECT AVG(r.rating)::float8
          FROM reviews r JOIN bookings b ON b.id = r.booking_id
         WHERE b.listing_id = l.id) AS average_rating`

var listingOrderColumns = map[string]string{
	"created_at":      "l.created_at",
	"price_per_night": "l.price_per_night",
	"rating":          "average_rating",
}

const defaultListingOrdering = "-created_at"

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner, extra ...any) (*domain.Listing, error) {
	var l domain.Listing
	dest := []any{
		&l.ID, &l.Title, &l.Description, &l.Location, &l.PropertyType,
		&l.PricePerNight, &l.MaxGuests, &l.Bedrooms, &l.Bathrooms, dbpg.Array(&l.Amenities),
		&l.Available, &l.HostID, &l.CreatedAt, &l.UpdatedAt, &l.AverageRating,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if l.Amenities == nil {
		l.Amenities = []string{}
	}
	return &l, nil
}

// listingWriteErr maps constraint failures of a listing write. The host_id
// foreign key only fails when the caller's account no longer exists.
func listingWriteErr(err error, op string) error {
	switch pgCode(err) {
	case codeForeignKeyViolation:
		return domain.ErrUnauthenticated
	case codeCheckViolation, codeNumericOutOfRange:
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, title, description, location, property_type, price_per_night,
                                    max_guests, bedrooms, bathrooms, amenities, available, host_id,
                                    created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Title, l.Description, l.Location, l.PropertyType, l.PricePerNight,
		l.MaxGuests, l.Bedrooms, l.Bathrooms, pq.Array(l.Amenities), l.Available, l.HostID,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return listingWriteErr(err, "insert listing")
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

// GetDetails adds the number of bookings confirmed in the last 30 days.
func (r *ListingRepository) GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error) {
	query := `SELECT ` + listingColumns + `,
                     (SELECT COUNT(*) FROM bookings b
                       WHERE b.listing_id = l.id AND b.status = $2
                         AND b.created_at >= NOW() - INTERVAL '30 days')
              FROM listings l WHERE l.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get listing details: %w", err)
	}

	var recent int
	l, err := scanListing(row, &recent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing details: %w", err)
	}

	return &domain.ListingDetails{Listing: *l, RecentBookingsCount: recent}, nil
}

func buildListingQuery(f domain.ListingFilter) (string, []any) {
	var c conditions
	if f.Location != "" {
		c.add("l.location = $%d", f.Location)
	}
	if f.PropertyType != "" {
		c.add("l.property_type = $%d", f.PropertyType)
	}
	if f.PricePerNight != nil {
		c.add("l.price_per_night = $%d", *f.PricePerNight)
	}
	if f.MinPrice != nil {
		c.add("l.price_per_night >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		c.add("l.price_per_night <= $%d", *f.MaxPrice)
	}
	if f.Search != "" {
		c.add("(l.title ILIKE $%[1]d OR l.description ILIKE $%[1]d OR l.location ILIKE $%[1]d)", contains(f.Search))
	}

	query := `SELECT ` + listingColumns + `, COUNT(*) OVER() FROM listings l` +
		c.where() +
		orderBy(f.Ordering, listingOrderColumns, defaultListingOrdering, "l.id") +
		c.page(f.Page)
	return query, c.args
}

func buildAvailabilityQuery(q domain.AvailabilityQuery) (string, []any) {
	var c conditions
	c.add("l.available = $%d", true)
	c.args = append(c.args, pq.Array(domain.ActiveStatuses), q.CheckOut, q.CheckIn)
	n := len(c.args)
	c.clauses = append(c.clauses, fmt.Sprintf(`NOT EXISTS (
        SELECT 1 FROM bookings b
         WHERE b.listing_id = l.id AND b.status = ANY($%d)
           AND b.check_in_date < $%d AND b.check_out_date > $%d)`, n-2, n-1, n))

	query := `SELECT ` + listingColumns + `, COUNT(*) OVER() FROM listings l` +
		c.where() +
		orderBy(defaultListingOrdering, listingOrderColumns, defaultListingOrdering, "l.id") +
		c.page(q.Page)
	return query, c.args
}

func buildLocationQuery(location string, p domain.PageRequest) (string, []any) {
	var c conditions
	c.add("l.location ILIKE $%d", contains(location))

	query := `SELECT ` + listingColumns + `, COUNT(*) OVER() FROM listings l` +
		c.where() +
		orderBy(defaultListingOrdering, listingOrderColumns, defaultListingOrdering, "l.id") +
		c.page(p)
	return query, c.args
}

func (r *ListingRepository) List(ctx context.Context, f domain.ListingFilter) (*domain.Page[*domain.Listing], error) {
	query, args := buildListingQuery(f)
	return r.page(ctx, query, args)
}

func (r *ListingRepository) ListAvailable(ctx context.Context, q domain.AvailabilityQuery) (*domain.Page[*domain.Listing], error) {
	query, args := buildAvailabilityQuery(q)
	return r.page(ctx, query, args)
}

func (r *ListingRepository) ListByLocation(ctx context.Context, location string, p domain.PageRequest) (*domain.Page[*domain.Listing], error) {
	query, args := buildLocationQuery(location, p)
	return r.page(ctx, query, args)
}

func (r *ListingRepository) page(ctx context.Context, query string, args []any) (*domain.Page[*domain.Listing], error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	res := &domain.Page[*domain.Listing]{Items: []*domain.Listing{}}
	for rows.Next() {
		l, err := scanListing(rows, &res.Total)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res.Items = append(res.Items, l)
	}

	return res, rows.Err()
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
              SET title = $2, description = $3, location = $4, property_type = $5,
                  price_per_night = $6, max_guests = $7, bedrooms = $8, bathrooms = $9,
                  amenities = $10, available = $11, updated_at = $12
              WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Title, l.Description, l.Location, l.PropertyType,
		l.PricePerNight, l.MaxGuests, l.Bedrooms, l.Bathrooms,
		pq.Array(l.Amenities), l.Available, l.UpdatedAt,
	)
	if err != nil {
		return listingWriteErr(err, "update listing")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// Delete removes a listing that holds no pending or confirmed bookings.
// Cancelled bookings and their reviews go with it.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}

	var active bool
	activeQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE listing_id = $1 AND status = ANY($2))`
	if err = tx.QueryRowContext(ctx, activeQuery, id, pq.Array(domain.ActiveStatuses)).Scan(&active); err != nil {
		return fmt.Errorf("check active bookings: %w", err)
	}
	if active {
		return domain.ErrListingHasActiveBookings
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	return tx.Commit()
}
