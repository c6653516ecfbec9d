package notification

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func testStay() (*domain.Listing, *domain.Booking) {
	listing := &domain.Listing{Title: "Beach House", Location: "Malibu, CA"}
	booking := &domain.Booking{
		CheckInDate:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2024, 12, 7, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 4,
		TotalPrice:     decimal.NewFromInt(900),
	}
	return listing, booking
}

func TestStay(t *testing.T) {
	listing, booking := testStay()

	text := stay(listing, booking)

	assert.Contains(t, text, "Beach House (Malibu, CA)")
	assert.Contains(t, text, "2024-12-01 to 2024-12-07, 6 night(s)")
	assert.Contains(t, text, "Total: 900.00")
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	chatID := int64(42)
	listing, booking := testStay()
	user := &domain.User{TelegramChatID: &chatID}

	assert.NotPanics(t, func() {
		n.NotifyBookingRequested(context.Background(), user, listing, booking)
		n.NotifyBookingConfirmed(context.Background(), user, listing, booking)
		n.NotifyBookingCancelled(context.Background(), &domain.User{}, listing, booking)
		n.NotifyBookingExpired(context.Background(), user, listing, booking)
	})
}
