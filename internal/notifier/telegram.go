package notifier

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vila-verde/booking-api/internal/models"
	"github.com/vila-verde/booking-api/internal/store"
)

// BookingUpdater is the slice of the booking store the callback loop needs.
// Callback-driven status changes go through the same transition rules as the
// HTTP surface.
type BookingUpdater interface {
	UpdateStatus(id string, status models.BookingStatus, adminNotes *string) (*models.Booking, error)
}

type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	baseURL string
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64, baseURL string) *TelegramNotifier {
	return &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		baseURL: baseURL,
	}
}

func (n *TelegramNotifier) NotifyBooking(booking models.Booking) error {
	if n.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}
	if n.chatID == 0 {
		return fmt.Errorf("telegram chat ID is empty")
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatBookingMessage(booking, n.baseURL))
	btnApprove := tgbotapi.NewInlineKeyboardButtonData("✅ Approve", "confirm:"+booking.ID)
	btnReject := tgbotapi.NewInlineKeyboardButtonData("❌ Reject", "reject:"+booking.ID)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(btnApprove, btnReject),
	)

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// Run long-polls Telegram updates and maps approve/reject button presses
// onto booking status transitions. Blocks; run it in a goroutine.
func (n *TelegramNotifier) Run(bookings BookingUpdater) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := n.bot.GetUpdatesChan(u)

	for update := range updates {
		cq := update.CallbackQuery
		if cq == nil {
			continue
		}
		n.bot.Request(tgbotapi.NewCallback(cq.ID, ""))

		reply, err := HandleCallback(cq.Data, bookings)
		if err != nil {
			log.Printf("Telegram callback %q failed: %v", cq.Data, err)
		}
		if reply != "" {
			if chatID := replyChatID(cq, n.chatID); chatID != 0 {
				n.bot.Send(tgbotapi.NewMessage(chatID, reply))
			}
		}
	}
}

// replyChatID picks where to send the callback reply. Telegram leaves
// CallbackQuery.Message nil for old or inaccessible messages, in which case
// the reply goes to the configured notification chat.
func replyChatID(cq *tgbotapi.CallbackQuery, fallback int64) int64 {
	if cq.Message != nil && cq.Message.Chat != nil {
		return cq.Message.Chat.ID
	}
	return fallback
}

// HandleCallback applies a "confirm:<id>" or "reject:<id>" callback and
// returns the operator-facing reply text.
func HandleCallback(data string, bookings BookingUpdater) (string, error) {
	action, id, ok := strings.Cut(data, ":")
	if !ok || id == "" {
		return "", fmt.Errorf("malformed callback data %q", data)
	}

	var status models.BookingStatus
	switch action {
	case "confirm":
		status = models.StatusConfirmed
	case "reject":
		status = models.StatusRejected
	default:
		return "", fmt.Errorf("unknown callback action %q", action)
	}

	booking, err := bookings.UpdateStatus(id, status, nil)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return "Booking not found. It may have been deleted.", err
		case errors.Is(err, store.ErrInvalidTransition):
			return "Booking is no longer pending.", err
		default:
			return "Failed to update the booking.", err
		}
	}

	if status == models.StatusConfirmed {
		return fmt.Sprintf("Booking for %s (%s → %s) confirmed.", booking.FullName, booking.CheckIn, booking.CheckOut), nil
	}
	return fmt.Sprintf("Booking for %s (%s → %s) rejected.", booking.FullName, booking.CheckIn, booking.CheckOut), nil
}
