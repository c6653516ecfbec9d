package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.LogAttrs(context.Background(), logger.WarnLevel, "telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, host *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\n%s\nConfirm or cancel it in the app.",
		stay(listing, b),
	)
	n.send(ctx, host.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, guest *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf("*Booking confirmed!*\n\n%s", stay(listing, b))
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, recipient *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf("*Booking cancelled*\n\n%s", stay(listing, b))
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, guest *domain.User, listing *domain.Listing, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking request expired*\n\n%s\nThe host did not confirm it before check-in.",
		stay(listing, b),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func stay(listing *domain.Listing, b *domain.Booking) string {
	return fmt.Sprintf(
		"Listing: %s (%s)\nDates: %s to %s, %d night(s)\nGuests: %d\nTotal: %s",
		listing.Title, listing.Location,
		b.CheckInDate.Format(time.DateOnly), b.CheckOutDate.Format(time.DateOnly), b.Nights(),
		b.NumberOfGuests,
		b.TotalPrice.StringFixed(2),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
