package notifier

import (
	"fmt"
	"strings"

	"github.com/vila-verde/booking-api/internal/models"
)

// FormatBookingMessage renders the message body posted to chat destinations
// when a new booking arrives.
func FormatBookingMessage(b models.Booking, baseURL string) string {
	var rooms []string
	for _, r := range b.Rooms {
		if r.ExtraBed {
			rooms = append(rooms, fmt.Sprintf("%d (extra bed)", r.RoomNumber))
		} else {
			rooms = append(rooms, fmt.Sprintf("%d", r.RoomNumber))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🛎 New booking request\n")
	fmt.Fprintf(&sb, "Guest: %s (ID %s)\n", b.FullName, b.IDNumber)
	if b.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	}
	fmt.Fprintf(&sb, "Rooms: %s\n", strings.Join(rooms, ", "))
	fmt.Fprintf(&sb, "Stay: %s → %s (%d nights)\n", b.CheckIn, b.CheckOut, b.Nights)
	fmt.Fprintf(&sb, "Total: %d RSD / %s EUR\n", b.TotalLocal, b.TotalForeign)
	if b.Notes != "" {
		fmt.Fprintf(&sb, "Note: %s\n", b.Notes)
	}
	if b.IDDocument != "" {
		fmt.Fprintf(&sb, "ID document: %s/uploads/%s\n", baseURL, b.IDDocument)
	}
	if b.PaymentProof != "" {
		fmt.Fprintf(&sb, "Payment proof: %s/uploads/%s\n", baseURL, b.PaymentProof)
	}
	return strings.TrimRight(sb.String(), "\n")
}
