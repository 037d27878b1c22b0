package pay_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/service/bookings"
)

const (
	msgInvalidCode = "некорректный код бронирования"
	msgNotFound    = "бронирование не найдено"
	msgAlreadyPaid = "бронирование уже оплачено"
	msgNotPayable  = "бронирование нельзя оплатить в текущем статусе"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{code}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	booking, err := h.service.Pay(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{code}/pay - Invalid code: %q", code)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{code}/pay - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyPaid):
			h.logger.Warn("POST /bookings/{code}/pay - Already paid: code=%s", code)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, bookings.ErrNotPayable):
			h.logger.Warn("POST /bookings/{code}/pay - Not payable: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgNotPayable)

		default:
			h.logger.Error("POST /bookings/{code}/pay - Failed to pay: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{code}/pay - Booking paid: code=%s", booking.BookingCode)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
