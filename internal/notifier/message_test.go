package notifier

import (
	"strings"
	"testing"

	"github.com/vila-verde/booking-api/internal/models"
)

func sampleBooking() models.Booking {
	return models.Booking{
		ID:       "b-1",
		FullName: "Jovana Petrovic",
		IDNumber: "008234567",
		Phone:    "+381641234567",
		Rooms: []models.BookingRoom{
			{RoomNumber: 2},
			{RoomNumber: 3, ExtraBed: true},
		},
		CheckIn:      "2025-12-24",
		CheckOut:     "2025-12-26",
		Nights:       2,
		TotalLocal:   9000,
		TotalForeign: "76.79",
		IDDocument:   "passport.png",
	}
}

func TestFormatBookingMessage(t *testing.T) {
	msg := FormatBookingMessage(sampleBooking(), "https://vila-verde.example")

	for _, want := range []string{
		"Jovana Petrovic",
		"008234567",
		"+381641234567",
		"2, 3 (extra bed)",
		"2025-12-24 → 2025-12-26 (2 nights)",
		"9000 RSD / 76.79 EUR",
		"https://vila-verde.example/uploads/passport.png",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	if strings.Contains(msg, "Payment proof") {
		t.Error("message mentions a payment proof that was not attached")
	}
}

func TestFormatBookingMessageOmitsEmptyFields(t *testing.T) {
	b := sampleBooking()
	b.Phone = ""
	b.IDDocument = ""

	msg := FormatBookingMessage(b, "https://vila-verde.example")
	if strings.Contains(msg, "Phone") {
		t.Error("message mentions an empty phone")
	}
	if strings.Contains(msg, "ID document") {
		t.Error("message mentions a missing id document")
	}
}
