package lookup_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
	"github.com/m04kA/RentalBookingService/internal/service/bookings"
)

const (
	msgInvalidPhone = "некорректный номер телефона"
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

// Handle GET /api/v1/bookings/lookup?phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	result, err := h.service.LookupByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/lookup - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}
		h.logger.Error("GET /bookings/lookup - Failed to lookup bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Ничего не найдено - пустой список, а не 404
	h.logger.Info("GET /bookings/lookup - Bookings found: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
