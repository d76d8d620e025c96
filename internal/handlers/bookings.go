package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
	"github.com/vila-verde/booking-api/internal/auth"
	"github.com/vila-verde/booking-api/internal/config"
	"github.com/vila-verde/booking-api/internal/models"
	"github.com/vila-verde/booking-api/internal/notifier"
	"github.com/vila-verde/booking-api/internal/pricing"
	"github.com/vila-verde/booking-api/internal/store"
	"github.com/vila-verde/booking-api/internal/uploads"
)

type BookingHandler struct {
	cfg         *config.Config
	store       *store.BookingStore
	uploads     *uploads.Store
	dispatcher  *notifier.Dispatcher
	authHandler *auth.AuthHandler
	validate    *validator.Validate
}

func NewBookingHandler(cfg *config.Config, bookings *store.BookingStore, files *uploads.Store, dispatcher *notifier.Dispatcher, authHandler *auth.AuthHandler) *BookingHandler {
	return &BookingHandler{
		cfg:         cfg,
		store:       bookings,
		uploads:     files,
		dispatcher:  dispatcher,
		authHandler: authHandler,
		validate:    validator.New(),
	}
}

// storeError translates store sentinels into the HTTP taxonomy. Unexpected
// causes are logged server-side and surface as a generic 500.
func storeError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("Booking not found")
	case errors.Is(err, store.ErrRoomUnavailable):
		return huma.Error409Conflict("Room is unavailable for the requested dates")
	case errors.Is(err, store.ErrInvalidTransition):
		return huma.Error400BadRequest("Booking status does not allow this action")
	default:
		log.Printf("Booking store error: %v", err)
		return huma.Error500InternalServerError("Internal error")
	}
}

type ListBookingsRequest struct {
	auth.AuthInput
}

type ListBookingsResponse struct {
	Body []models.Booking
}

func (h *BookingHandler) HandleList(ctx context.Context, input *ListBookingsRequest) (*ListBookingsResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	bookings, err := h.store.GetAll()
	if err != nil {
		return nil, storeError(err)
	}
	return &ListBookingsResponse{Body: bookings}, nil
}

type CheckAvailabilityRequest struct {
	RoomNumber int    `query:"roomNumber" required:"true" doc:"Room number to check"`
	CheckIn    string `query:"checkIn" required:"true" doc:"Check-in date (YYYY-MM-DD)"`
	CheckOut   string `query:"checkOut" required:"true" doc:"Check-out date (YYYY-MM-DD)"`
}

type CheckAvailabilityResponse struct {
	Body struct {
		Available bool `json:"available"`
	}
}

func (h *BookingHandler) HandleCheckAvailability(ctx context.Context, input *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	if input.RoomNumber < 1 || input.RoomNumber > h.cfg.RoomCount {
		return nil, huma.Error400BadRequest("Room number out of range")
	}
	if _, err := pricing.Nights(input.CheckIn, input.CheckOut); err != nil {
		return nil, huma.Error400BadRequest("Invalid date range")
	}

	available, err := h.store.CheckAvailability(input.RoomNumber, input.CheckIn, input.CheckOut, "")
	if err != nil {
		return nil, storeError(err)
	}

	res := &CheckAvailabilityResponse{}
	res.Body.Available = available
	return res, nil
}

type GetBookingRequest struct {
	ID string `path:"id"`
}

type BookingResponse struct {
	Body models.Booking
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *GetBookingRequest) (*BookingResponse, error) {
	booking, err := h.store.GetByID(input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	return &BookingResponse{Body: *booking}, nil
}

type InvoiceResponse struct {
	Body struct {
		Booking     models.Booking `json:"booking"`
		NightlyRate int            `json:"nightly_rate"`
		Bank        struct {
			Name      string `json:"name"`
			Account   string `json:"account"`
			Recipient string `json:"recipient"`
		} `json:"bank"`
	}
}

// HandleInvoice returns the data backing the guest-facing invoice view:
// the booking, the rate breakdown and the bank transfer details.
func (h *BookingHandler) HandleInvoice(ctx context.Context, input *GetBookingRequest) (*InvoiceResponse, error) {
	booking, err := h.store.GetByID(input.ID)
	if err != nil {
		return nil, storeError(err)
	}

	res := &InvoiceResponse{}
	res.Body.Booking = *booking
	res.Body.NightlyRate = h.cfg.NightlyRate
	res.Body.Bank.Name = h.cfg.BankName
	res.Body.Bank.Account = h.cfg.BankAccount
	res.Body.Bank.Recipient = h.cfg.BankRecipient
	return res, nil
}

type StatusRequest struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *BookingHandler) HandleConfirm(ctx context.Context, input *StatusRequest) (*BookingResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	booking, err := h.store.UpdateStatus(input.ID, models.StatusConfirmed, nil)
	if err != nil {
		return nil, storeError(err)
	}
	return &BookingResponse{Body: *booking}, nil
}

type RejectRequest struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		Note *string `json:"note,omitempty" doc:"Optional note stored as admin_notes"`
	}
}

func (h *BookingHandler) HandleReject(ctx context.Context, input *RejectRequest) (*BookingResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	booking, err := h.store.UpdateStatus(input.ID, models.StatusRejected, input.Body.Note)
	if err != nil {
		return nil, storeError(err)
	}
	return &BookingResponse{Body: *booking}, nil
}

func (h *BookingHandler) HandleCancel(ctx context.Context, input *StatusRequest) (*BookingResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	booking, err := h.store.UpdateStatus(input.ID, models.StatusCancelled, nil)
	if err != nil {
		return nil, storeError(err)
	}
	return &BookingResponse{Body: *booking}, nil
}

type UpdateDatesRequest struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		CheckIn  string `json:"check_in" required:"true" doc:"New check-in date (YYYY-MM-DD)"`
		CheckOut string `json:"check_out" required:"true" doc:"New check-out date (YYYY-MM-DD)"`
	}
}

func (h *BookingHandler) HandleUpdateDates(ctx context.Context, input *UpdateDatesRequest) (*BookingResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	nights, err := pricing.Nights(input.Body.CheckIn, input.Body.CheckOut)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid date range")
	}
	totalLocal := pricing.TotalLocal(nights, h.cfg.NightlyRate)
	totalForeign := pricing.TotalForeign(totalLocal, h.cfg.ExchangeRate)

	booking, err := h.store.UpdateDates(input.ID, input.Body.CheckIn, input.Body.CheckOut, nights, totalLocal, totalForeign)
	if err != nil {
		return nil, storeError(err)
	}
	return &BookingResponse{Body: *booking}, nil
}

type DeleteBookingRequest struct {
	auth.AuthInput
	ID string `path:"id"`
}

type DeleteResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

func (h *BookingHandler) HandleDelete(ctx context.Context, input *DeleteBookingRequest) (*DeleteResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	booking, err := h.store.GetByID(input.ID)
	if err != nil {
		return nil, storeError(err)
	}

	existed, err := h.store.Delete(input.ID)
	if err != nil {
		return nil, storeError(err)
	}
	if !existed {
		return nil, huma.Error404NotFound("Booking not found")
	}

	// Attached files go with the booking.
	h.uploads.Remove(booking.IDDocument)
	h.uploads.Remove(booking.PaymentProof)

	res := &DeleteResponse{}
	res.Body.Deleted = true
	return res, nil
}
