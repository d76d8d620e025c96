package models

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// DateFormat is the wire and storage format for stay dates.
const DateFormat = "2006-01-02"

type Booking struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName string `json:"full_name"`
	IDNumber string `json:"id_number"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`

	Rooms []BookingRoom `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"rooms"`

	// Stay window, date-only strings (YYYY-MM-DD). Stored as text so the
	// round-trip format at the API boundary is exact.
	CheckIn  string `gorm:"size:10" json:"check_in"`
	CheckOut string `gorm:"size:10" json:"check_out"`
	Nights   int    `json:"nights"`

	TotalLocal   int    `json:"total_rsd"`
	TotalForeign string `gorm:"size:16" json:"total_eur"`

	Status     BookingStatus `gorm:"size:16;index" json:"status"`
	AdminNotes string        `json:"admin_notes"`

	BookingDate string `gorm:"size:10" json:"booking_date"`

	// Stored upload filenames, empty when the guest attached nothing.
	IDDocument   string `json:"id_document"`
	PaymentProof string `json:"payment_proof"`
}

type BookingRoom struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	BookingID  string `gorm:"size:36;index" json:"-"`
	RoomNumber int    `json:"room_number"`
	ExtraBed   bool   `json:"extra_bed"`
}

// IsActive reports whether the booking still occupies its rooms. Rejected and
// cancelled bookings are excluded from availability checks.
func (b *Booking) IsActive() bool {
	return b.Status != StatusRejected && b.Status != StatusCancelled
}

func (b *Booking) CanConfirm() bool {
	return b.Status == StatusPending
}

func (b *Booking) CanReject() bool {
	return b.Status == StatusPending
}

func (b *Booking) CanCancel() bool {
	return b.Status == StatusConfirmed
}

// CanEditDates allows date edits while the booking has not reached a terminal
// state.
func (b *Booking) CanEditDates() bool {
	return b.IsActive()
}

// RoomNumbers returns the assigned room numbers in stored order.
func (b *Booking) RoomNumbers() []int {
	nums := make([]int, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		nums = append(nums, r.RoomNumber)
	}
	return nums
}
