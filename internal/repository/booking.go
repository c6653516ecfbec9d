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

const bookingColumns = `b.id, b.listing_id, b.guest_id, l.host_id, b.check_in_date, b.check_out_date,
       b.number_of_guests, b.total_price, b.status, b.special_requests, b.created_at, b.updated_at`

var bookingOrderColumns = map[string]string{
	"created_at":    "b.created_at",
	"check_in_date": "b.check_in_date",
	"total_price":   "b.total_price",
}

const defaultBookingOrdering = "-created_at"

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanBooking(s scanner, extra ...any) (*domain.Booking, error) {
	var b domain.Booking
	dest := []any{
		&b.ID, &b.ListingID, &b.GuestID, &b.HostID, &b.CheckInDate, &b.CheckOutDate,
		&b.NumberOfGuests, &b.TotalPrice, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &b, nil
}

// lockListing takes the row lock that serializes every write touching the
// listing's calendar.
func lockListing(ctx context.Context, tx *sql.Tx, listingID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, listingID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrListingNotFound
	}
	if err != nil {
		return fmt.Errorf("lock listing: %w", err)
	}
	return nil
}

// checkOverlap fails with ErrDatesUnavailable when an active booking other
// than excludeID holds any night of [b.CheckInDate, b.CheckOutDate).
func checkOverlap(ctx context.Context, tx *sql.Tx, b *domain.Booking, excludeID any) error {
	query := `SELECT EXISTS (
                SELECT 1 FROM bookings
                 WHERE listing_id = $1 AND id IS DISTINCT FROM $2 AND status = ANY($3)
                   AND check_in_date < $4 AND check_out_date > $5)`

	var busy bool
	if err := tx.QueryRowContext(
		ctx, query, b.ListingID, excludeID,
		pq.Array(domain.ActiveStatuses), b.CheckOutDate, b.CheckInDate,
	).Scan(&busy); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if busy {
		return domain.ErrDatesUnavailable
	}
	return nil
}

func bookingWriteErr(err error, op string) error {
	switch pgCode(err) {
	case codeExclusionViolation:
		return domain.ErrDatesUnavailable
	case codeForeignKeyViolation:
		return domain.ErrListingNotFound
	case codeCheckViolation, codeNumericOutOfRange:
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, b.ListingID); err != nil {
		return err
	}
	if err = checkOverlap(ctx, tx, b, nil); err != nil {
		return err
	}

	query := `INSERT INTO bookings (id, listing_id, guest_id, check_in_date, check_out_date, number_of_guests,
                                    total_price, status, special_requests, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, query, b.ID, b.ListingID, b.GuestID, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests,
		b.TotalPrice, b.Status, b.SpecialRequests, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return bookingWriteErr(err, "insert booking")
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings b JOIN listings l ON l.id = b.listing_id
              WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func buildBookingQuery(f domain.BookingFilter) (string, []any) {
	var c conditions
	c.add("(b.guest_id = $%[1]d OR l.host_id = $%[1]d)", f.CallerID)
	if f.Status != "" {
		c.add("b.status = $%d", f.Status)
	}
	if f.ListingID != "" {
		c.add("b.listing_id = $%d", f.ListingID)
	}

	query := `SELECT ` + bookingColumns + `, COUNT(*) OVER()
              FROM bookings b JOIN listings l ON l.id = b.listing_id` +
		c.where() +
		orderBy(f.Ordering, bookingOrderColumns, defaultBookingOrdering, "b.id") +
		c.page(f.Page)
	return query, c.args
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) (*domain.Page[*domain.Booking], error) {
	query, args := buildBookingQuery(f)
	return r.page(ctx, query, args)
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID string, p domain.PageRequest) (*domain.Page[*domain.Booking], error) {
	var c conditions
	c.add("b.guest_id = $%d", guestID)
	query := `SELECT ` + bookingColumns + `, COUNT(*) OVER()
              FROM bookings b JOIN listings l ON l.id = b.listing_id` +
		c.where() +
		orderBy("check_in_date", bookingOrderColumns, defaultBookingOrdering, "b.id") +
		c.page(p)
	return r.page(ctx, query, c.args)
}

func (r *BookingRepository) page(ctx context.Context, query string, args []any) (*domain.Page[*domain.Booking], error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := &domain.Page[*domain.Booking]{Items: []*domain.Booking{}}
	for rows.Next() {
		b, err := scanBooking(rows, &res.Total)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res.Items = append(res.Items, b)
	}

	return res, rows.Err()
}

// Update rewrites the mutable fields of a pending booking after re-checking
// its dates against every other active booking on the listing.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockListing(ctx, tx, b.ListingID); err != nil {
		return err
	}
	if err = checkOverlap(ctx, tx, b, b.ID); err != nil {
		return err
	}

	query := `UPDATE bookings
              SET check_in_date = $2, check_out_date = $3, number_of_guests = $4,
                  special_requests = $5, total_price = $6, updated_at = $7
              WHERE id = $1 AND status = $8`
	res, err := tx.ExecContext(
		ctx, query, b.ID, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests,
		b.SpecialRequests, b.TotalPrice, b.UpdatedAt, domain.BookingStatusPending,
	)
	if err != nil {
		return bookingWriteErr(err, "update booking")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingStatusChanged
	}

	return tx.Commit()
}

// Delete removes a booking that is still pending.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingStatusChanged
	}

	return nil
}

// UpdateStatus moves the booking to `to` only if its current status is one of
// from. A booking changed by a concurrent request yields ErrBookingStatusChanged.
func (r *BookingRepository) UpdateStatus(
	ctx context.Context, id string,
	from []domain.BookingStatus, to domain.BookingStatus,
) (*domain.Booking, error) {
	query := `UPDATE bookings b
              SET status = $3, updated_at = NOW()
              FROM listings l
              WHERE b.id = $1 AND b.status = ANY($2) AND l.id = b.listing_id
              RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, pq.Array(from), to)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingStatusChanged
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// CancelStale cancels every pending booking whose check-in date is before
// the given day.
func (r *BookingRepository) CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET status = $2, updated_at = NOW()
        FROM listings l
        WHERE l.id = b.listing_id
          AND b.status = $1
          AND b.check_in_date < $3
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, before,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
