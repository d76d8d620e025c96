package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vila-verde/booking-api/internal/models"
	"github.com/vila-verde/booking-api/internal/pricing"
	"github.com/vila-verde/booking-api/internal/store"
	"github.com/vila-verde/booking-api/internal/uploads"
)

type createBookingForm struct {
	FullName string `validate:"required,min=2"`
	IDNumber string `validate:"required,min=3"`
	Phone    string `validate:"omitempty,max=32"`
	Notes    string `validate:"omitempty,max=1000"`
	CheckIn  string `validate:"required,datetime=2006-01-02"`
	CheckOut string `validate:"required,datetime=2006-01-02"`
}

// HandleCreate is the public multipart submission endpoint. Validation and
// availability run before anything is persisted; uploaded files are removed
// again when the submission fails.
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	form := createBookingForm{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		IDNumber: strings.TrimSpace(r.FormValue("idNumber")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Notes:    strings.TrimSpace(r.FormValue("notes")),
		CheckIn:  r.FormValue("checkIn"),
		CheckOut: r.FormValue("checkOut"),
	}
	if err := h.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid value for %s", verrs[0].Field()))
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid booking details")
		return
	}

	rooms, err := parseRooms(r.FormValue("rooms"), r.FormValue("roomNumber"), r.FormValue("extraBedRooms"), h.cfg.RoomCount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	nights, err := pricing.Nights(form.CheckIn, form.CheckOut)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Check-out must be after check-in")
		return
	}
	totalLocal := pricing.TotalLocal(nights, h.cfg.NightlyRate)
	totalForeign := pricing.TotalForeign(totalLocal, h.cfg.ExchangeRate)

	var idDocument, paymentProof string
	if fh := formFile(r, "idDocument"); fh != nil {
		idDocument, err = h.uploads.SaveIDPhoto(fh)
		if err != nil {
			respondUploadError(w, err)
			return
		}
	}
	if fh := formFile(r, "paymentProof"); fh != nil {
		paymentProof, err = h.uploads.SavePaymentProof(fh)
		if err != nil {
			h.uploads.Remove(idDocument)
			respondUploadError(w, err)
			return
		}
	}

	booking := &models.Booking{
		FullName:     form.FullName,
		IDNumber:     form.IDNumber,
		Phone:        form.Phone,
		Notes:        form.Notes,
		Rooms:        rooms,
		CheckIn:      form.CheckIn,
		CheckOut:     form.CheckOut,
		Nights:       nights,
		TotalLocal:   totalLocal,
		TotalForeign: totalForeign,
		IDDocument:   idDocument,
		PaymentProof: paymentProof,
	}

	if err := h.store.Create(booking); err != nil {
		h.uploads.Remove(idDocument)
		h.uploads.Remove(paymentProof)
		if errors.Is(err, store.ErrRoomUnavailable) {
			respondError(w, http.StatusConflict, "Room is unavailable for the requested dates")
			return
		}
		log.Printf("Failed to create booking: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	// Fire-and-forget: notification failure never fails the submission.
	h.dispatcher.Dispatch(*booking)

	respondJSON(w, http.StatusCreated, booking)
}

func respondUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uploads.ErrFileTooLarge):
		respondError(w, http.StatusBadRequest, "Uploaded file is too large")
	case errors.Is(err, uploads.ErrUnsupportedType):
		respondError(w, http.StatusBadRequest, "Unsupported file type")
	default:
		log.Printf("Failed to store upload: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}

func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// parseRooms accepts either a comma-separated "rooms" list or the legacy
// single "roomNumber" field. Every extra-bed room must be one of the
// selected rooms.
func parseRooms(roomsField, roomNumberField, extraBedField string, roomCount int) ([]models.BookingRoom, error) {
	raw := roomsField
	if raw == "" {
		raw = roomNumberField
	}
	if raw == "" {
		return nil, fmt.Errorf("No room selected")
	}

	numbers, err := parseRoomList(raw, roomCount)
	if err != nil {
		return nil, err
	}

	extraBeds := map[int]bool{}
	if extraBedField != "" {
		extras, err := parseRoomList(extraBedField, roomCount)
		if err != nil {
			return nil, err
		}
		selected := map[int]bool{}
		for _, n := range numbers {
			selected[n] = true
		}
		for _, n := range extras {
			if !selected[n] {
				return nil, fmt.Errorf("Extra bed requested for unselected room %d", n)
			}
			extraBeds[n] = true
		}
	}

	rooms := make([]models.BookingRoom, 0, len(numbers))
	for _, n := range numbers {
		rooms = append(rooms, models.BookingRoom{RoomNumber: n, ExtraBed: extraBeds[n]})
	}
	return rooms, nil
}

func parseRoomList(raw string, roomCount int) ([]int, error) {
	var numbers []int
	seen := map[int]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("Invalid room number %q", part)
		}
		if n < 1 || n > roomCount {
			return nil, fmt.Errorf("Room number %d out of range", n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, fmt.Errorf("No room selected")
	}
	return numbers, nil
}
