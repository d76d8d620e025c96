package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vila-verde/booking-api/internal/models"
	"gorm.io/gorm"
)

// BookingStore owns persistence and availability queries for bookings. Status
// transitions are enforced here so the HTTP handlers and the chat-bot
// callbacks share a single rule set.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

// GetAll returns all bookings, newest booking date first.
func (s *BookingStore) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Rooms").
		Order("booking_date desc, created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingStore) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Rooms").First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts a new booking with status forced to pending. The
// availability check and the insert run in one transaction, closing the
// check-then-insert race between concurrent submissions.
func (s *BookingStore) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.BookingDate == "" {
		booking.BookingDate = time.Now().Format(models.DateFormat)
	}
	booking.Status = models.StatusPending

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, room := range booking.Rooms {
			ok, err := checkAvailabilityTx(tx, room.RoomNumber, booking.CheckIn, booking.CheckOut, "")
			if err != nil {
				return err
			}
			if !ok {
				return ErrRoomUnavailable
			}
		}
		return tx.Create(booking).Error
	})
}

// UpdateStatus applies a status transition. AdminNotes is only written when
// the caller supplies it (rejections carry an optional note).
func (s *BookingStore) UpdateStatus(id string, status models.BookingStatus, adminNotes *string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Rooms").First(&booking, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		allowed := false
		switch status {
		case models.StatusConfirmed:
			allowed = booking.CanConfirm()
		case models.StatusRejected:
			allowed = booking.CanReject()
		case models.StatusCancelled:
			allowed = booking.CanCancel()
		}
		if !allowed {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": status}
		if adminNotes != nil {
			updates["admin_notes"] = *adminNotes
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		booking.Status = status
		if adminNotes != nil {
			booking.AdminNotes = *adminNotes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateDates overwrites the stay window and totals. The availability
// re-check excludes the booking's own id so an in-place edit does not
// conflict with itself.
func (s *BookingStore) UpdateDates(id, checkIn, checkOut string, nights, totalLocal int, totalForeign string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Rooms").First(&booking, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !booking.CanEditDates() {
			return ErrInvalidTransition
		}

		for _, room := range booking.Rooms {
			ok, err := checkAvailabilityTx(tx, room.RoomNumber, checkIn, checkOut, booking.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrRoomUnavailable
			}
		}

		updates := map[string]interface{}{
			"check_in":      checkIn,
			"check_out":     checkOut,
			"nights":        nights,
			"total_local":   totalLocal,
			"total_foreign": totalForeign,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return err
		}
		booking.CheckIn = checkIn
		booking.CheckOut = checkOut
		booking.Nights = nights
		booking.TotalLocal = totalLocal
		booking.TotalForeign = totalForeign
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Delete hard-deletes a booking and its room assignments. Returns whether a
// row existed.
func (s *BookingStore) Delete(id string) (bool, error) {
	existed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Booking{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return tx.Delete(&models.BookingRoom{}, "booking_id = ?", id).Error
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

// CheckAvailability reports whether a room is free for [checkIn, checkOut).
// excludeID, when non-empty, leaves that booking out of the conflict scan.
func (s *BookingStore) CheckAvailability(room int, checkIn, checkOut, excludeID string) (bool, error) {
	return checkAvailabilityTx(s.db, room, checkIn, checkOut, excludeID)
}

// checkAvailabilityTx runs the overlap scan: two [in, out) ranges conflict
// iff existing.check_in < checkOut AND existing.check_out > checkIn. Shared
// endpoints (back-to-back stays) do not conflict.
func checkAvailabilityTx(tx *gorm.DB, room int, checkIn, checkOut, excludeID string) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_number = ?", room).
		Where("bookings.status NOT IN ?", []models.BookingStatus{models.StatusRejected, models.StatusCancelled}).
		Where("bookings.check_in < ? AND bookings.check_out > ?", checkOut, checkIn)
	if excludeID != "" {
		q = q.Where("bookings.id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
